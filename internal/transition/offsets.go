package transition

import "navctl/internal/slot"

// Offsets positions the outgoing (Prev) and incoming (Next) slots, in percent
// of the slot size.
type Offsets struct {
	Prev slot.Offset
	Next slot.Offset
}

// lerp maps v from [0,1] onto [from,to]. Values outside [0,1] extrapolate,
// which lets spring overshoot carry the views slightly past their rest position.
func lerp(v, from, to float64) float64 {
	return from + v*(to-from)
}

// Compute maps a progress value to slot offsets for k. Unknown kinds are
// treated as None, which moves like PushLeft.
func Compute(progress float64, k Kind) Offsets {
	var o Offsets
	switch k {
	case PushRight:
		o.Prev.X = lerp(progress, 0, 100)
		o.Next.X = lerp(progress, -100, 0)
	case PushUp:
		o.Prev.Y = lerp(progress, 0, -100)
		o.Next.Y = lerp(progress, 100, 0)
	case PushDown:
		o.Prev.Y = lerp(progress, 0, 100)
		o.Next.Y = lerp(progress, -100, 0)
	case CoverLeft:
		o.Next.X = lerp(progress, 100, 0)
	case CoverRight:
		o.Next.X = lerp(progress, -100, 0)
	case CoverUp:
		o.Next.Y = lerp(progress, 100, 0)
	case CoverDown:
		o.Next.Y = lerp(progress, -100, 0)
	case RevealLeft:
		o.Prev.X = lerp(progress, 0, -100)
	case RevealRight:
		o.Prev.X = lerp(progress, 0, 100)
	case RevealUp:
		o.Prev.Y = lerp(progress, 0, -100)
	case RevealDown:
		o.Prev.Y = lerp(progress, 0, 100)
	default: // None, PushLeft
		o.Prev.X = lerp(progress, 0, -100)
		o.Next.X = lerp(progress, 100, 0)
	}
	return o
}
