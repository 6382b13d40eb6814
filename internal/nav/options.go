package nav

import (
	"navctl/internal/spring"
	"navctl/internal/transition"
)

// Options configures a single Push, Pop or PopToRoot.
type Options struct {
	// Transition is a transition.Kind or a transition.Func.
	// Nil selects the controller default for the operation.
	Transition transition.Transition

	// Tension and Friction override the controller spring for this
	// operation. Zero keeps the controller value.
	Tension  float64
	Friction float64

	// OnComplete runs once the transition has settled and the stack reflects
	// the operation.
	OnComplete func()
}

// SetViewsOptions configures SetViews.
type SetViewsOptions struct {
	Options

	// PreserveState, when set, replaces the controller's preservation setting
	// once the new stack is in place.
	PreserveState *bool
}

func (o Options) validate(op string) error {
	switch t := o.Transition.(type) {
	case nil:
	case transition.Kind:
		if !t.Valid() {
			return invalidArgument(op, "unknown transition %s", t)
		}
	case transition.Func:
		if t == nil {
			return invalidArgument(op, "custom transition is nil")
		}
	}
	if o.Tension < 0 || o.Friction < 0 {
		return invalidArgument(op, "negative spring parameters")
	}
	return nil
}

// springFor returns the spring parameters for o, falling back to the
// controller defaults, and checks they describe a usable spring.
func (o Options) springFor(op string, tension, friction float64) (float64, float64, error) {
	if o.Tension > 0 {
		tension = o.Tension
	}
	if o.Friction > 0 {
		friction = o.Friction
	}
	if err := spring.Validate(tension, friction); err != nil {
		return 0, 0, invalidArgument(op, "%v", err)
	}
	return tension, friction, nil
}
