// Package spring drives transition progress from 0 to 1 with a damped
// harmonic oscillator, one simulation step per frame.
package spring

import (
	"errors"
	"math"

	"github.com/charmbracelet/harmonica"

	"navctl/internal/frame"
	"navctl/internal/transition"
)

// Default Origami-style parameters: quick with a slight bounce.
const (
	DefaultTension  = 10.0
	DefaultFriction = 6.0
)

// Rest thresholds, in progress units and progress units per second.
const (
	RestDisplacement = 0.001
	RestSpeed        = 0.001
)

// ErrInvalidSpring is returned for parameters that do not describe a damped spring.
var ErrInvalidSpring = errors.New("spring: tension and friction must be positive")

// OrigamiTension converts an Origami tension value to a spring constant.
func OrigamiTension(t float64) float64 {
	return (t-30)*3.62 + 194
}

// OrigamiFriction converts an Origami friction value to a damping coefficient.
func OrigamiFriction(f float64) float64 {
	return (f-8)*3 + 25
}

// Params returns the angular frequency and damping ratio of a unit-mass
// spring with the given Origami tension and friction.
func Params(tension, friction float64) (angularFrequency, dampingRatio float64, err error) {
	if tension <= 0 || friction <= 0 {
		return 0, 0, ErrInvalidSpring
	}
	k, c := OrigamiTension(tension), OrigamiFriction(friction)
	if k <= 0 || c <= 0 {
		return 0, 0, ErrInvalidSpring
	}
	w := math.Sqrt(k)
	return w, c / (2 * w), nil
}

// Validate reports whether tension and friction can drive an animation.
func Validate(tension, friction float64) error {
	_, _, err := Params(tension, friction)
	return err
}

// Animator runs one transition at a time. It is not safe for concurrent use;
// all callbacks fire from the frame scheduler.
type Animator struct {
	sched frame.Scheduler
	fps   int

	// MaxSteps caps the number of simulated frames of one run. The run is
	// reported at rest when it is reached.
	MaxSteps int

	cur *run
	pos float64
	vel float64
}

type run struct {
	spring  harmonica.Spring
	onFrame func(float64)
	onRest  func()
	steps   int
	stopped bool
}

// NewAnimator creates an animator simulating at fps steps per second.
func NewAnimator(sched frame.Scheduler, fps int) *Animator {
	if fps <= 0 {
		fps = frame.DefaultFPS
	}
	return &Animator{
		sched:    sched,
		fps:      fps,
		MaxSteps: 10 * fps,
	}
}

// Running reports whether a spring run is in progress.
func (a *Animator) Running() bool {
	return a.cur != nil
}

// Value returns the current simulated progress.
func (a *Animator) Value() float64 {
	return a.pos
}

// Run animates progress toward 1, calling onFrame on every step and onRest
// exactly once when the spring settles. For transition.None it calls
// onFrame(1) immediately and onRest on the next frame. onRest never runs
// synchronously inside Run.
func (a *Animator) Run(k transition.Kind, tension, friction float64, onFrame func(float64), onRest func()) error {
	if onFrame == nil {
		onFrame = func(float64) {}
	}
	if onRest == nil {
		onRest = func() {}
	}
	a.Stop()

	if k == transition.None {
		onFrame(1)
		r := &run{onRest: onRest}
		a.cur = r
		a.sched.RequestFrame(func() {
			if r.stopped {
				return
			}
			a.cur = nil
			r.onRest()
		})
		return nil
	}

	w, zeta, err := Params(tension, friction)
	if err != nil {
		return err
	}
	r := &run{
		spring:  harmonica.NewSpring(harmonica.FPS(a.fps), w, zeta),
		onFrame: onFrame,
		onRest:  onRest,
	}
	a.cur = r
	a.pos, a.vel = 0, 0
	a.sched.RequestFrame(func() { a.step(r) })
	return nil
}

func (a *Animator) step(r *run) {
	if r.stopped {
		return
	}
	a.pos, a.vel = r.spring.Update(a.pos, a.vel, 1)
	r.steps++

	if a.atRest() || (a.MaxSteps > 0 && r.steps >= a.MaxSteps) {
		r.onFrame(1)
		// Reset before onRest so a run started from inside it begins at 0.
		a.pos, a.vel = 0, 0
		a.cur = nil
		r.onRest()
		return
	}
	r.onFrame(a.pos)
	a.sched.RequestFrame(func() { a.step(r) })
}

func (a *Animator) atRest() bool {
	return math.Abs(1-a.pos) <= RestDisplacement && math.Abs(a.vel) <= RestSpeed
}

// Stop abandons the current run. onRest will not be called for it.
func (a *Animator) Stop() {
	if a.cur != nil {
		a.cur.stopped = true
		a.cur = nil
	}
	a.pos, a.vel = 0, 0
}
