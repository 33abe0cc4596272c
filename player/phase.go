package player

// Phase is one state in the playback cycle. The order below is the
// authoritative cycle order; no phase is ever skipped except the
// AwaitInput -> InputReceived shortcut driven by a choice click.
type Phase int

const (
	PhaseBackgroundIn Phase = iota
	PhasePauseAfterBackground
	PhaseTextIn
	PhasePauseAfterText
	PhaseChoicesIn
	PhaseAwaitInput
	PhaseInputReceived
	PhaseTextOut
	PhaseBackgroundOut
)

// next returns the phase that follows p in the cycle.
func (p Phase) next() Phase {
	if p == PhaseBackgroundOut {
		return PhaseBackgroundIn
	}
	return p + 1
}

func (p Phase) String() string {
	switch p {
	case PhaseBackgroundIn:
		return "BackgroundIn"
	case PhasePauseAfterBackground:
		return "PauseAfterBackground"
	case PhaseTextIn:
		return "TextIn"
	case PhasePauseAfterText:
		return "PauseAfterText"
	case PhaseChoicesIn:
		return "ChoicesIn"
	case PhaseAwaitInput:
		return "AwaitInput"
	case PhaseInputReceived:
		return "InputReceived"
	case PhaseTextOut:
		return "TextOut"
	case PhaseBackgroundOut:
		return "BackgroundOut"
	default:
		return "Unknown"
	}
}
