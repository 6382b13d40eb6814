package nav

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"navctl/internal/transition"
)

// operation is one accepted navigation, from acceptance until it settles.
type operation struct {
	name  string
	depth int // stack depth when accepted

	out *entry // nil for the initial mount
	in  *entry

	kind     transition.Kind
	custom   transition.Func
	tension  float64
	friction float64

	prev, next int // physical slots for out and in

	save    bool            // snapshot out before it is covered
	restore func() Snapshot // snapshot to hand back to in
	commit  func()          // stack mutation applied at completion

	onComplete func()
	span       trace.Span
	done       bool
}

func (o *operation) label() string {
	if o.custom != nil {
		return "custom"
	}
	return o.kind.String()
}

// prepare resolves the transition and spring for an accepted operation.
func (c *Controller) prepare(op string, opts Options, fallback transition.Transition) (*operation, error) {
	t := opts.Transition
	if t == nil {
		t = fallback
	}
	kind, custom := transition.Resolve(t, transition.None)
	o := &operation{
		name:       op,
		depth:      c.stack.len(),
		kind:       kind,
		custom:     custom,
		tension:    c.tension,
		friction:   c.friction,
		onComplete: opts.OnComplete,
	}
	if custom == nil && kind != transition.None {
		tension, friction, err := opts.springFor(op, c.tension, c.friction)
		if err != nil {
			return nil, err
		}
		o.tension, o.friction = tension, friction
	}
	return o, nil
}

// begin mounts both sides of o, runs the will hooks and starts the transition.
// The in-flight guard is held from here until finish.
func (c *Controller) begin(o *operation) {
	o.prev, o.next = c.Slots()
	c.current = o
	c.startSpan(o)
	c.log.Debug("navigation started",
		zap.String("op", o.name),
		zap.String("transition", o.label()),
		zap.Int("prev_slot", o.prev),
		zap.Int("next_slot", o.next))

	c.renderer.ShowBoth()
	c.place(o.prev, o.out)
	c.place(o.next, o.in)

	if c.preserveState {
		if o.save && o.out != nil {
			var s Snapshot
			if st, ok := o.out.inst.(Stateful); ok {
				s = st.SaveState()
			}
			c.states.push(o.out, s)
		}
		if o.restore != nil {
			if s := o.restore(); s != nil {
				if st, ok := o.in.inst.(Stateful); ok {
					st.RestoreState(s)
				}
			}
		}
	}

	if o.out != nil {
		if h, ok := o.out.inst.(WillHider); ok {
			h.NavWillHide(c)
		}
	}
	if h, ok := o.in.inst.(WillShower); ok {
		h.NavWillShow(c)
	}

	if o.custom != nil {
		o.custom(c.renderer.Target(o.prev), c.renderer.Target(o.next), func() {
			if o.done {
				c.log.Warn("custom transition signalled completion more than once",
					zap.String("op", o.name))
				return
			}
			o.done = true
			c.finish(o)
		})
		return
	}

	reveal := o.kind.IsReveal()
	err := c.animator.Run(o.kind, o.tension, o.friction,
		func(p float64) {
			if c.current != o {
				return
			}
			off := transition.Compute(p, o.kind)
			c.renderer.Apply(o.prev, o.next, off.Prev, off.Next, reveal)
		},
		func() { c.finish(o) })
	if err != nil {
		// Unreachable once prepare accepted the spring.
		c.log.Error("spring rejected parameters", zap.String("op", o.name), zap.Error(err))
		c.finish(o)
	}
}

// place mounts e into physical slot i unless it is already there.
func (c *Controller) place(i int, e *entry) {
	if e == nil {
		return
	}
	if c.slots[i] == e && e.inst != nil {
		return
	}
	if old := c.slots[i]; old != nil && old.inst != nil {
		c.host.Unmount(i, old.inst)
	}
	if e.inst == nil {
		e.inst = c.instantiate(e.view)
	}
	c.slots[i] = e
	c.host.Mount(i, e.inst)
}

func (c *Controller) instantiate(v View) Instance {
	if f, ok := v.(Factory); ok {
		if inst := f.NewInstance(c); inst != nil {
			return inst
		}
	}
	return v
}

// finish settles o: the outgoing slot is hidden and emptied, the stack
// mutation is applied, the slots flip and the guard is released before the
// did hooks and the completion callback run.
func (c *Controller) finish(o *operation) {
	if c.current != o {
		return
	}
	c.renderer.SetVisible(o.prev, false)
	if o.commit != nil {
		o.commit()
	}

	out := o.out
	var outInst Instance
	keep := false
	if out != nil {
		outInst = out.inst
		if c.slots[o.prev] == out {
			c.slots[o.prev] = nil
			if outInst != nil {
				c.host.Unmount(o.prev, outInst)
			}
		}
		keep = c.preserveInstances && c.stack.contains(out)
		if !keep {
			out.inst = nil
		}
	}
	inInst := o.in.inst

	c.front = o.prev
	c.current = nil

	if h, ok := outInst.(DidHider); ok {
		h.NavDidHide(c)
	}
	if h, ok := inInst.(DidShower); ok {
		h.NavDidShow(c)
	}
	if !keep && outInst != nil {
		dispose(outInst)
	}

	o.span.SetAttributes(attribute.Int("navctl.depth.after", c.stack.len()))
	o.span.End()
	c.log.Debug("navigation settled",
		zap.String("op", o.name),
		zap.String("transition", o.label()),
		zap.Int("depth", c.stack.len()))

	if o.onComplete != nil {
		o.onComplete()
	}
}
