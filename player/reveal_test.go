package player

import "testing"

func TestReveal(t *testing.T) {
	tests := []struct {
		name     string
		phase    Phase
		fraction float64
		bg       float64
		text     float64
		choices  float64
	}{
		{"BackgroundInStart", PhaseBackgroundIn, 0, 0, 0, 0},
		{"BackgroundInHalf", PhaseBackgroundIn, 0.5, 0.5, 0, 0},
		{"PauseAfterBackground", PhasePauseAfterBackground, 0.3, 1, 0, 0},
		{"TextInHalf", PhaseTextIn, 0.5, 1, 0.5, 0},
		{"PauseAfterText", PhasePauseAfterText, 0.9, 1, 1, 0},
		{"ChoicesInQuarter", PhaseChoicesIn, 0.25, 1, 1, 0.25},
		{"AwaitInputPinned", PhaseAwaitInput, 0.7, 1, 1, 1},
		{"InputReceivedPinned", PhaseInputReceived, 1, 1, 1, 1},
		{"TextOutHalf", PhaseTextOut, 0.5, 1, 0.5, 0.5},
		{"TextOutDone", PhaseTextOut, 1, 1, 0, 0},
		{"BackgroundOutHalf", PhaseBackgroundOut, 0.5, 0.5, 0, 0},
		{"BackgroundOutDone", PhaseBackgroundOut, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, text, choices := Reveal(tt.phase, tt.fraction)
			if bg != tt.bg || text != tt.text || choices != tt.choices {
				t.Errorf("Reveal(%v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.phase, tt.fraction, bg, text, choices, tt.bg, tt.text, tt.choices)
			}
		})
	}
}
