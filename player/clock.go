package player

import (
	"math"

	"github.com/fableterm/fableterm/config"
)

// Countdown tracks elapsed time against a fixed duration.
type Countdown struct {
	elapsed  float64
	duration float64
}

// Tick accumulates elapsed seconds, saturating at the duration so the
// fraction lands on exactly 1.0 the tick the countdown finishes.
func (c *Countdown) Tick(dt float64) {
	c.elapsed += dt
	if c.elapsed > c.duration {
		c.elapsed = c.duration
	}
}

// Done reports whether the countdown has run out. A zero-duration
// countdown is done immediately.
func (c Countdown) Done() bool {
	return c.elapsed >= c.duration
}

// Fraction returns elapsed/duration clamped to [0,1]. Zero-duration
// countdowns report 1.0.
func (c Countdown) Fraction() float64 {
	if c.duration <= 0 {
		return 1.0
	}
	f := c.elapsed / c.duration
	if f > 1.0 {
		return 1.0
	}
	return f
}

// SlideTiming is the per-slide context the clock needs to size its
// content-dependent phases.
type SlideTiming struct {
	DescriptionRunes int
	ChoiceCount      int
}

// Clock owns the active phase and its countdown.
type Clock struct {
	cfg   config.Config
	phase Phase
	timer Countdown

	// Cosmetic blink accumulator for AwaitInput; never drives transitions.
	blink float64
}

// NewClock starts a clock at the top of the cycle.
func NewClock(cfg config.Config) *Clock {
	return &Clock{
		cfg:   cfg,
		phase: PhaseBackgroundIn,
		timer: Countdown{duration: cfg.BackgroundFadeIn},
	}
}

// Phase returns the active phase.
func (c *Clock) Phase() Phase {
	return c.phase
}

// Fraction returns how far the active phase's countdown has run.
func (c *Clock) Fraction() float64 {
	return c.timer.Fraction()
}

// BlinkOn reports the cosmetic blink state while waiting for input.
func (c *Clock) BlinkOn() bool {
	if c.phase != PhaseAwaitInput {
		return true
	}
	period := c.cfg.HoverBlink
	return math.Mod(c.blink, 2*period) < period
}

// Advance ticks the active countdown by dt seconds and, when it runs out,
// moves to the next phase in the cycle, sizing that phase's countdown from
// ctx. It returns the phase that just completed, if any. AwaitInput ignores
// dt (apart from the blink) until RequestTransition is called.
//
// ctx must be resolved by the caller first; handing Advance a nil context
// is an orchestration-order bug, not a recoverable condition.
func (c *Clock) Advance(dt float64, ctx *SlideTiming) (completed Phase, ok bool) {
	if ctx == nil {
		panic("player: Clock.Advance called without a slide context")
	}

	if c.phase == PhaseAwaitInput {
		c.blink += dt
		return 0, false
	}

	c.timer.Tick(dt)
	if !c.timer.Done() {
		return 0, false
	}

	completed = c.phase
	c.phase = c.phase.next()
	c.timer = Countdown{duration: c.durationFor(c.phase, ctx)}
	if c.phase == PhaseAwaitInput {
		c.blink = 0
	}
	return completed, true
}

// RequestTransition forces the waiting phase into InputReceived. It is the
// only input-driven shortcut in the cycle and is ignored in every other
// phase, so clicks during fade-out cannot redirect the exit.
func (c *Clock) RequestTransition() bool {
	if c.phase != PhaseAwaitInput {
		return false
	}
	c.phase = PhaseInputReceived
	c.timer = Countdown{}
	return true
}

// durationFor sizes a phase's countdown from the slide context.
func (c *Clock) durationFor(p Phase, ctx *SlideTiming) float64 {
	switch p {
	case PhaseBackgroundIn:
		return c.cfg.BackgroundFadeIn
	case PhasePauseAfterBackground, PhasePauseAfterText:
		return c.cfg.PhasePause
	case PhaseTextIn:
		return c.readingDuration(ctx.DescriptionRunes)
	case PhaseChoicesIn:
		return float64(ctx.ChoiceCount) * c.cfg.PerChoiceReveal
	case PhaseTextOut:
		return c.cfg.QuickFadeOut
	case PhaseBackgroundOut:
		return c.cfg.BackgroundFadeOut
	default:
		// AwaitInput has no countdown; InputReceived is a pass-through
		return 0
	}
}

// readingDuration estimates reading time in seconds from an assumed mean
// word length and reading speed. An empty description yields 0 and the
// phase completes on the next tick.
func (c *Clock) readingDuration(runes int) float64 {
	words := float64(runes) / c.cfg.MeanWordLength
	return words / c.cfg.ReadingSpeedWPS
}
