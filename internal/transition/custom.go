package transition

import "navctl/internal/slot"

// Transition is either a catalog Kind or a caller-supplied Func.
type Transition interface {
	transition()
}

// Func is a caller-supplied transition. It gets the outgoing and incoming
// render targets and must call done exactly once when it has finished, from
// any later frame or synchronously. A Func that never calls done leaves the
// controller transitioning for good.
type Func func(prev, next slot.Target, done func())

func (Kind) transition() {}
func (Func) transition() {}

// Resolve splits t into its built-in kind or custom func. A nil t resolves to
// fallback.
func Resolve(t Transition, fallback Kind) (Kind, Func) {
	switch v := t.(type) {
	case nil:
		return fallback, nil
	case Kind:
		return v, nil
	case Func:
		return None, v
	}
	return fallback, nil
}
