package player

import (
	"fmt"
	"log"
	"math"

	"github.com/fableterm/fableterm/background"
	"github.com/fableterm/fableterm/config"
	"github.com/fableterm/fableterm/story"
)

// State is the single live playback state. It is owned and mutated by the
// Controller; the slide name fields are best-effort references that the
// per-tick rename remap keeps valid.
type State struct {
	CurrentSlide string
	NextSlide    string

	BGOpacity       float64
	TextFraction    float64
	ChoicesFraction float64

	// HoveringChoice indexes the current slide's actions, -1 when none.
	HoveringChoice int

	// missTicks counts consecutive ticks the current slide failed to
	// resolve; the grace policy reads it.
	missTicks int
}

// ChoiceView is one visible choice label.
type ChoiceView struct {
	Text    string
	Hovered bool
}

// Display is the per-tick render product handed to the presentation layer.
// It is rebuilt every tick and cheap to read repeatedly.
type Display struct {
	SlideName      string
	BackgroundRows []string
	// Notice replaces or annotates the background area: fetch pending,
	// background record missing, or - with Missing set - slide missing.
	Notice      string
	Description string
	Choices     []ChoiceView
	HoverBlink  bool
	Missing     bool
}

// Controller orchestrates the clock and reveal model against live content.
type Controller struct {
	cfg         config.Config
	store       *story.Store
	backgrounds *background.Service
	feed        *story.Feed

	clock *Clock
	state State

	display Display

	// OnSlideChange, when set, fires after the exit fade completes and the
	// queued slide becomes current.
	OnSlideChange func(name string)
}

// NewController starts playback at the configured slide.
func NewController(cfg config.Config, store *story.Store, bgs *background.Service, start string) *Controller {
	return &Controller{
		cfg:         cfg,
		store:       store,
		backgrounds: bgs,
		feed:        store.SubscribeSlides(),
		clock:       NewClock(cfg),
		state: State{
			CurrentSlide:   start,
			NextSlide:      start,
			HoveringChoice: -1,
		},
	}
}

// Tick advances playback by dt seconds. Fixed order per tick: apply
// notifications, resolve the current slide, advance the clock, recompute
// fractions, rebuild the display. Rename remapping runs before resolution
// so a rename arriving the same tick as a transition cannot cause a miss.
func (c *Controller) Tick(dt float64) {
	c.applyNotes()
	c.backgrounds.Poll()

	slide, ok := c.store.Slide(c.state.CurrentSlide)
	if !ok {
		c.miss()
		return
	}
	c.state.missTicks = 0

	timing := SlideTiming{
		DescriptionRunes: len([]rune(slide.Description)),
		ChoiceCount:      len(slide.Actions),
	}
	completed, done := c.clock.Advance(dt, &timing)
	if done && completed == PhaseBackgroundOut {
		c.state.CurrentSlide = c.state.NextSlide
		c.state.HoveringChoice = -1
		if c.OnSlideChange != nil {
			c.OnSlideChange(c.state.CurrentSlide)
		}
		// Render the incoming slide this tick when it resolves; a missing
		// target falls into the grace path on the next tick.
		if next, ok := c.store.Slide(c.state.CurrentSlide); ok {
			slide = next
		}
	}

	c.state.BGOpacity, c.state.TextFraction, c.state.ChoicesFraction =
		Reveal(c.clock.Phase(), c.clock.Fraction())

	c.display = c.buildDisplay(slide)
}

// applyNotes consumes pending slide notifications. Renames remap both name
// fields in place; deletes degrade to the not-found path on resolution.
func (c *Controller) applyNotes() {
	for _, n := range c.feed.Drain() {
		if n.Kind != story.NoteRenamed {
			continue
		}
		if c.state.CurrentSlide == n.Old {
			c.state.CurrentSlide = n.Name
		}
		if c.state.NextSlide == n.Old {
			c.state.NextSlide = n.Name
		}
	}
}

// miss applies the grace policy for an unresolvable current slide: hold the
// last good display for up to GraceTicks ticks, then degrade. The session
// keeps ticking either way; a reappearing slide resumes playback.
func (c *Controller) miss() {
	c.state.missTicks++
	if c.state.missTicks <= c.cfg.GraceTicks {
		log.Printf("slide %q not found, holding last frame (%d/%d)",
			c.state.CurrentSlide, c.state.missTicks, c.cfg.GraceTicks)
		return
	}
	c.display = Display{
		SlideName: c.state.CurrentSlide,
		Notice:    fmt.Sprintf("The slide %q does not exist", c.state.CurrentSlide),
		Missing:   true,
	}
}

// buildDisplay converts fractions plus content into the render product.
func (c *Controller) buildDisplay(slide story.Slide) Display {
	d := Display{
		SlideName:  slide.Name,
		HoverBlink: c.clock.BlinkOn(),
	}

	if slide.Background == "" {
		d.BackgroundRows = background.BlankGrid().Rows()
	} else {
		grid, status := c.backgrounds.Render(slide.Background, c.state.BGOpacity)
		switch status {
		case background.StatusReady:
			d.BackgroundRows = grid.Rows()
		case background.StatusPending:
			d.Notice = fmt.Sprintf("fetching background %q...", slide.Background)
		case background.StatusNotFound:
			d.Notice = fmt.Sprintf("no such background: %q", slide.Background)
		}
	}

	runes := []rune(slide.Description)
	shown := int(math.Floor(float64(len(runes)) * c.state.TextFraction))
	d.Description = string(runes[:shown])

	visible := int(math.Floor(float64(len(slide.Actions)) * c.state.ChoicesFraction))
	hovering := c.clock.Phase() == PhaseAwaitInput
	for i := 0; i < visible; i++ {
		d.Choices = append(d.Choices, ChoiceView{
			Text:    slide.Actions[i].Text,
			Hovered: hovering && i == c.state.HoveringChoice,
		})
	}
	return d
}

// Display returns the most recent tick's render product.
func (c *Controller) Display() Display {
	return c.display
}

// Phase exposes the active playback phase.
func (c *Controller) Phase() Phase {
	return c.clock.Phase()
}

// State returns a snapshot of the playback state.
func (c *Controller) State() State {
	return c.state
}

// VisibleChoiceCount reports how many choices the last tick revealed.
func (c *Controller) VisibleChoiceCount() int {
	return len(c.display.Choices)
}

// SetHover records the pointer-hover candidate, -1 for none.
func (c *Controller) SetHover(i int) {
	c.state.HoveringChoice = i
}

// Hover returns the current hover candidate, -1 for none.
func (c *Controller) Hover() int {
	return c.state.HoveringChoice
}

// Select acts on a clicked choice. It is honored only while the clock is
// waiting for input with a resolvable slide and a valid index; every other
// click is ignored. A dangling action target is accepted - the grace policy
// deals with it after the jump.
func (c *Controller) Select(i int) bool {
	if c.clock.Phase() != PhaseAwaitInput {
		return false
	}
	slide, ok := c.store.Slide(c.state.CurrentSlide)
	if !ok || i < 0 || i >= len(slide.Actions) {
		return false
	}
	c.state.NextSlide = slide.Actions[i].TargetSlide
	return c.clock.RequestTransition()
}
