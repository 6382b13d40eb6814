package nav

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"navctl/internal/frame"
	"navctl/internal/slot"
	"navctl/internal/spring"
	"navctl/internal/transition"
)

const tracerName = "navctl/nav"

// Config configures a Controller.
type Config struct {
	// Views is the initial stack, root first. Must not be empty.
	Views []View

	// PreserveState saves the state of a covered Stateful instance on push
	// and restores it when the views above it are popped.
	PreserveState bool

	// PreserveInstances keeps instances of covered views alive instead of
	// tearing them down once they are fully hidden.
	PreserveInstances bool

	// Tension and Friction are Origami spring parameters for the built-in
	// transitions. Zero selects spring.DefaultTension / spring.DefaultFriction.
	Tension  float64
	Friction float64

	// DefaultPush is used by Push and SetViews when no transition is given
	// (transition.PushLeft if nil); DefaultPop by Pop and PopToRoot
	// (transition.PushRight if nil).
	DefaultPush transition.Transition
	DefaultPop  transition.Transition

	// Scheduler drives every animation frame. Required.
	Scheduler frame.Scheduler

	// Targets are the two render slots. Nil targets are allowed.
	Targets [slot.Count]slot.Target

	// Host is told when instances enter and leave slots. Defaults to NopHost.
	Host Host

	// FPS is the spring simulation rate. Defaults to frame.DefaultFPS.
	FPS int

	Logger         *zap.Logger
	TracerProvider trace.TracerProvider
}

// Controller manages a stack of views and the transitions between them.
type Controller struct {
	log      *zap.Logger
	tracer   trace.Tracer
	host     Host
	renderer *slot.Renderer
	animator *spring.Animator

	tension     float64
	friction    float64
	defaultPush transition.Transition
	defaultPop  transition.Transition

	stack  viewStack
	slots  [slot.Count]*entry // mounted view per physical slot
	front  int                // physical slot that receives the incoming view
	states stateBuffer

	preserveState     bool
	preserveInstances bool

	current *operation // non-nil while transitioning
	closed  bool
}

// New creates a controller, stages all but the last of cfg.Views and pushes
// the last one without animation. The initial view settles on the next frame.
func New(cfg Config) (*Controller, error) {
	if len(cfg.Views) == 0 {
		return nil, invalidArgument("new", "at least one view is required")
	}
	for i, v := range cfg.Views {
		if !validView(v) {
			return nil, invalidArgument("new", "view %d is not a valid view", i)
		}
	}
	if cfg.Scheduler == nil {
		return nil, invalidArgument("new", "a frame scheduler is required")
	}
	tension, friction := cfg.Tension, cfg.Friction
	if tension == 0 {
		tension = spring.DefaultTension
	}
	if friction == 0 {
		friction = spring.DefaultFriction
	}
	if err := spring.Validate(tension, friction); err != nil {
		return nil, invalidArgument("new", "%v", err)
	}
	for _, t := range []transition.Transition{cfg.DefaultPush, cfg.DefaultPop} {
		if err := (Options{Transition: t}).validate("new"); err != nil {
			return nil, err
		}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	host := cfg.Host
	if host == nil {
		host = NopHost{}
	}
	defaultPush, defaultPop := cfg.DefaultPush, cfg.DefaultPop
	if defaultPush == nil {
		defaultPush = transition.PushLeft
	}
	if defaultPop == nil {
		defaultPop = transition.PushRight
	}

	c := &Controller{
		log:               log.Named("nav"),
		tracer:            tp.Tracer(tracerName),
		host:              host,
		renderer:          slot.NewRenderer(cfg.Scheduler, cfg.Targets[0], cfg.Targets[1]),
		animator:          spring.NewAnimator(cfg.Scheduler, cfg.FPS),
		tension:           tension,
		friction:          friction,
		defaultPush:       defaultPush,
		defaultPop:        defaultPop,
		front:             1,
		preserveState:     cfg.PreserveState,
		preserveInstances: cfg.PreserveInstances,
	}

	n := len(cfg.Views)
	for _, v := range cfg.Views[:n-1] {
		e := &entry{view: v}
		c.stack.push(e)
		if c.preserveState {
			// Staged views were never shown, so they have nothing to restore.
			c.states.push(e, nil)
		}
	}

	prev, next := c.Slots()
	c.renderer.Apply(prev, next, slot.Offset{}, slot.Offset{X: -100}, false)
	o, err := c.prepare("init", Options{Transition: transition.None}, c.defaultPush)
	if err != nil {
		return nil, err
	}
	o.in = &entry{view: cfg.Views[n-1]}
	c.stack.push(o.in)
	c.begin(o)
	return c, nil
}

// Push makes v the new top of the stack.
func (c *Controller) Push(v View, opts Options) error {
	const op = "push"
	if !validView(v) {
		return invalidArgument(op, "not a valid view")
	}
	if err := opts.validate(op); err != nil {
		return err
	}
	if err := c.usable(op); err != nil {
		return err
	}
	if c.ignore(op) {
		return nil
	}
	o, err := c.prepare(op, opts, c.defaultPush)
	if err != nil {
		return err
	}
	o.out = c.stack.peek()
	o.in = &entry{view: v}
	o.save = true
	c.stack.push(o.in)
	c.begin(o)
	return nil
}

// Pop removes the top view, revealing the one beneath it.
// It fails with ErrInvalidOperation when only the root view is on the stack.
func (c *Controller) Pop(opts Options) error {
	const op = "pop"
	if err := opts.validate(op); err != nil {
		return err
	}
	if err := c.usable(op); err != nil {
		return err
	}
	if c.stack.len() < 2 {
		return invalidOperation(op, "cannot pop the root view")
	}
	if c.ignore(op) {
		return nil
	}
	o, err := c.prepare(op, opts, c.defaultPop)
	if err != nil {
		return err
	}
	o.out = c.stack.peek()
	o.in = c.stack.at(c.stack.len() - 2)
	o.restore = func() Snapshot { return c.states.take(o.in) }
	o.commit = func() { c.stack.pop() }
	c.begin(o)
	return nil
}

// PopToRoot collapses the stack to its root view in a single transition.
// It fails with ErrInvalidOperation when only the root view is on the stack.
func (c *Controller) PopToRoot(opts Options) error {
	const op = "pop_to_root"
	if err := opts.validate(op); err != nil {
		return err
	}
	if err := c.usable(op); err != nil {
		return err
	}
	if c.stack.len() < 2 {
		return invalidOperation(op, "cannot pop the root view")
	}
	if c.ignore(op) {
		return nil
	}
	o, err := c.prepare(op, opts, c.defaultPop)
	if err != nil {
		return err
	}
	o.out = c.stack.peek()
	o.in = c.stack.at(0)
	o.restore = func() Snapshot {
		s := c.states.lookup(o.in)
		c.states.clear()
		return s
	}
	o.commit = func() {
		for _, e := range c.stack.truncate(1) {
			if e != o.out {
				c.discard(e)
			}
		}
	}
	c.begin(o)
	return nil
}

// SetViews replaces the whole stack with views. Only the transition onto the
// new top view is animated; the entries below it appear at once when the
// transition settles, and the preservation buffer is cleared.
func (c *Controller) SetViews(views []View, opts SetViewsOptions) error {
	const op = "set_views"
	if len(views) == 0 {
		return invalidArgument(op, "at least one view is required")
	}
	for i, v := range views {
		if !validView(v) {
			return invalidArgument(op, "view %d is not a valid view", i)
		}
	}
	if err := opts.validate(op); err != nil {
		return err
	}
	if err := c.usable(op); err != nil {
		return err
	}
	if c.ignore(op) {
		return nil
	}
	o, err := c.prepare(op, opts.Options, c.defaultPush)
	if err != nil {
		return err
	}
	views = append([]View(nil), views...)
	o.out = c.stack.peek()
	o.in = &entry{view: views[len(views)-1]}
	c.stack.push(o.in)
	o.commit = func() {
		entries := make([]*entry, len(views))
		for i, v := range views[:len(views)-1] {
			entries[i] = &entry{view: v}
		}
		entries[len(views)-1] = o.in
		for _, e := range c.stack.replace(entries) {
			if e != o.in && e != o.out {
				c.discard(e)
			}
		}
		c.states.clear()
		if opts.PreserveState != nil {
			c.preserveState = *opts.PreserveState
		}
	}
	c.begin(o)
	return nil
}

// usable rejects calls on a closed controller.
func (c *Controller) usable(op string) error {
	if c.closed {
		return invalidOperation(op, "controller is closed")
	}
	return nil
}

// ignore reports whether op must be dropped because a transition is in flight.
func (c *Controller) ignore(op string) bool {
	if c.current == nil {
		return false
	}
	c.log.Debug("navigation ignored, transition in flight",
		zap.String("op", op),
		zap.String("running", c.current.name))
	return true
}

// Views returns a copy of the stack, root first.
func (c *Controller) Views() []View {
	return c.stack.views()
}

// Len returns the stack depth.
func (c *Controller) Len() int {
	return c.stack.len()
}

// Top returns the view at the top of the stack, or nil if it is empty.
func (c *Controller) Top() View {
	if e := c.stack.peek(); e != nil {
		return e.view
	}
	return nil
}

// Transitioning reports whether an operation is in flight.
func (c *Controller) Transitioning() bool {
	return c.current != nil
}

// Slots returns the physical slots that the next operation will use for the
// outgoing (prev) and incoming (next) views.
func (c *Controller) Slots() (prev, next int) {
	return 1 - c.front, c.front
}

// Active returns the physical slot that shows the top view once the
// controller is idle. While transitioning it is the outgoing slot.
func (c *Controller) Active() int {
	return 1 - c.front
}

// Mounted returns the instance currently mounted in physical slot i, or nil.
func (c *Controller) Mounted(i int) Instance {
	if i < 0 || i >= slot.Count || c.slots[i] == nil {
		return nil
	}
	return c.slots[i].inst
}

// MountedView returns the view currently mounted in physical slot i, or nil.
func (c *Controller) MountedView(i int) View {
	if i < 0 || i >= slot.Count || c.slots[i] == nil {
		return nil
	}
	return c.slots[i].view
}

// PreservedDepth returns the number of saved view-state snapshots.
func (c *Controller) PreservedDepth() int {
	return c.states.len()
}

// PreserveState reports whether view state is saved across pushes.
func (c *Controller) PreserveState() bool {
	return c.preserveState
}

// Close stops any running animation and tears down every instance. The
// controller rejects further operations with ErrInvalidOperation.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.animator.Stop()
	if o := c.current; o != nil {
		o.span.SetAttributes(attribute.Bool("navctl.aborted", true))
		o.span.End()
		c.current = nil
	}
	for i, e := range c.slots {
		if e != nil && e.inst != nil {
			c.host.Unmount(i, e.inst)
		}
		c.slots[i] = nil
	}
	for _, e := range c.stack.replace(nil) {
		c.discard(e)
	}
	c.states.clear()
	c.log.Debug("controller closed")
}

// discard tears down an entry's instance, if it still has one.
func (c *Controller) discard(e *entry) {
	if e == nil || e.inst == nil {
		return
	}
	dispose(e.inst)
	e.inst = nil
}

func (c *Controller) startSpan(o *operation) {
	_, o.span = c.tracer.Start(context.Background(), "navctl."+o.name,
		trace.WithAttributes(
			attribute.String("navctl.transition", o.label()),
			attribute.Int("navctl.depth.before", o.depth),
		))
}
