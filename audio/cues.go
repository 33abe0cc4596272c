package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const cueSampleRate = beep.SampleRate(44100)

// Cues plays short feedback tones for playback events. A failed speaker
// init leaves the player silent but fully functional.
type Cues struct {
	ready bool
}

// NewCues initializes the speaker. The returned error is informational;
// the Cues value is usable either way.
func NewCues() (*Cues, error) {
	err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10))
	return &Cues{ready: err == nil}, err
}

// Selected plays the choice-click tone.
func (c *Cues) Selected() {
	c.tone(880, 50*time.Millisecond)
}

// SlideChanged plays the slide-transition tone.
func (c *Cues) SlideChanged() {
	c.tone(440, 90*time.Millisecond)
}

func (c *Cues) tone(freq float64, d time.Duration) {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(cueSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(d), sine))
}

// Close shuts the speaker down.
func (c *Cues) Close() {
	if c != nil && c.ready {
		speaker.Close()
	}
}
