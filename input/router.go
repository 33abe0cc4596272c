package input

import (
	"math"

	"github.com/fableterm/fableterm/player"
)

// Layout places the choice list for hit-testing. It must agree with the
// coordinates the presentation layer draws at.
type Layout struct {
	// OriginY is the row of choice index 0.
	OriginY int
	// Spacing is the row distance between successive choices.
	Spacing int
	// Tolerance is the maximum vertical distance that still counts as a hit.
	Tolerance float64
}

// Router translates pointer state into hover and selection signals for the
// controller.
type Router struct {
	ctrl   *player.Controller
	layout Layout

	pointerX int
	pointerY int
}

// NewRouter wires a router to a controller.
func NewRouter(ctrl *player.Controller, layout Layout) *Router {
	return &Router{ctrl: ctrl, layout: layout}
}

// PointerMoved records the pointer position and refreshes the hover
// candidate.
func (r *Router) PointerMoved(x, y int) {
	r.pointerX = x
	r.pointerY = y
	r.ctrl.SetHover(r.hitTest())
}

// Clicked acts on a press at the last pointer position. The controller
// applies the phase gating; before the choices are revealed there is
// nothing hoverable, so early clicks fall through untouched.
func (r *Router) Clicked() bool {
	hover := r.hitTest()
	r.ctrl.SetHover(hover)
	if hover < 0 {
		return false
	}
	return r.ctrl.Select(hover)
}

// hitTest finds the visible choice nearest the pointer within tolerance.
// Ties resolve to the lowest index: iteration ascends and only a strictly
// smaller distance replaces the candidate.
func (r *Router) hitTest() int {
	visible := r.ctrl.VisibleChoiceCount()
	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < visible; i++ {
		rowY := r.layout.OriginY + i*r.layout.Spacing
		dist := math.Abs(float64(rowY - r.pointerY))
		if dist < r.layout.Tolerance && dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
