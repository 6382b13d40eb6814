package ui

import (
	"navctl/internal/frame"
	"navctl/internal/slot"
	"navctl/internal/transition"
)

// Drop is a custom transition: the incoming slot falls from above in a
// fixed number of frames while the outgoing one stays put underneath.
func Drop(sched frame.Scheduler, frames int) transition.Func {
	if frames < 1 {
		frames = 1
	}
	return func(prev, next slot.Target, done func()) {
		if prev != nil {
			prev.SetZIndex(0)
		}
		if next != nil {
			next.SetZIndex(1)
			next.SetTranslate(0, -100)
		}
		var step func(n int)
		step = func(n int) {
			if next != nil {
				// Ease out: fast start, soft landing.
				t := float64(n) / float64(frames)
				next.SetTranslate(0, -100*(1-t)*(1-t))
			}
			if n >= frames {
				done()
				return
			}
			sched.RequestFrame(func() { step(n + 1) })
		}
		sched.RequestFrame(func() { step(1) })
	}
}
