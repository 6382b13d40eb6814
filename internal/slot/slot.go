// Package slot owns the two render targets a navigation controller
// alternates between. It positions and stacks them on frame boundaries and
// never looks at what they display.
package slot

import "navctl/internal/frame"

// Count is the number of render slots. Exactly two views can be mounted at once.
const Count = 2

// Offset is a 2D translation expressed as a percentage of the slot's own size.
type Offset struct {
	X float64
	Y float64
}

// Target is the platform element backing a slot.
type Target interface {
	SetTranslate(xPercent, yPercent float64)
	SetZIndex(z int)
	SetVisible(visible bool)
}

// Renderer applies offsets, stacking order and visibility to two targets.
// Offsets are applied on the next frame; visibility changes are immediate.
type Renderer struct {
	targets [Count]Target
	sched   frame.Scheduler
}

// NewRenderer creates a renderer over targets a and b.
// Either target may be nil, in which case calls for that slot are dropped.
func NewRenderer(sched frame.Scheduler, a, b Target) *Renderer {
	return &Renderer{
		targets: [Count]Target{a, b},
		sched:   sched,
	}
}

// Target returns the target backing slot i, or nil if i is out of range.
func (r *Renderer) Target(i int) Target {
	if i < 0 || i >= Count {
		return nil
	}
	return r.targets[i]
}

// Apply schedules one frame that translates the prev and next slots and
// assigns their z-order. With reveal set the outgoing (prev) slot stacks
// above the incoming one.
func (r *Renderer) Apply(prev, next int, prevOff, nextOff Offset, reveal bool) {
	pt, nt := r.Target(prev), r.Target(next)
	prevZ, nextZ := 0, 1
	if reveal {
		prevZ, nextZ = 1, 0
	}
	r.sched.RequestFrame(func() {
		if pt != nil {
			pt.SetTranslate(prevOff.X, prevOff.Y)
			pt.SetZIndex(prevZ)
		}
		if nt != nil {
			nt.SetTranslate(nextOff.X, nextOff.Y)
			nt.SetZIndex(nextZ)
		}
	})
}

// SetVisible shows or hides slot i.
func (r *Renderer) SetVisible(i int, visible bool) {
	if t := r.Target(i); t != nil {
		t.SetVisible(visible)
	}
}

// ShowBoth makes both slots visible, ahead of a transition.
func (r *Renderer) ShowBoth() {
	for i := range r.targets {
		r.SetVisible(i, true)
	}
}
