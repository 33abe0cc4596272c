package player

// Reveal derives the three observable reveal fractions from the active
// phase and its countdown fraction. Pure: same inputs, same outputs.
//
// Because Countdown saturates, fraction is exactly 1.0 the tick a phase
// completes, so the values below snap to exact boundaries and downstream
// truncation math never sees a near-but-not-exact edge.
func Reveal(phase Phase, fraction float64) (bgOpacity, textFraction, choicesFraction float64) {
	switch phase {
	case PhaseBackgroundIn:
		return fraction, 0, 0
	case PhasePauseAfterBackground:
		return 1, 0, 0
	case PhaseTextIn:
		return 1, fraction, 0
	case PhasePauseAfterText:
		return 1, 1, 0
	case PhaseChoicesIn:
		return 1, 1, fraction
	case PhaseAwaitInput, PhaseInputReceived:
		return 1, 1, 1
	case PhaseTextOut:
		return 1, 1 - fraction, 1 - fraction
	case PhaseBackgroundOut:
		return 1 - fraction, 0, 0
	default:
		return 0, 0, 0
	}
}
