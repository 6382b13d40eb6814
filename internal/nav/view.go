package nav

// View is an opaque, immutable stack entry. The controller only looks at its
// identity; a View is valid when it is non-nil and ViewID is non-empty.
type View interface {
	ViewID() string
}

// Instance is the mounted incarnation of a View.
type Instance any

// Factory is implemented by views that want a fresh Instance every time they
// are mounted. Views without it are mounted as themselves.
type Factory interface {
	NewInstance(c *Controller) Instance
}

// WillHider is notified before its instance starts animating out.
type WillHider interface {
	NavWillHide(c *Controller)
}

// DidHider is notified once its instance is fully hidden.
type DidHider interface {
	NavDidHide(c *Controller)
}

// WillShower is notified before its instance starts animating in.
type WillShower interface {
	NavWillShow(c *Controller)
}

// DidShower is notified once its instance has settled on screen.
type DidShower interface {
	NavDidShow(c *Controller)
}

// Snapshot is a view-defined piece of saved state.
type Snapshot any

// Stateful instances can save their state when covered by a push and get it
// back when the views above them are popped. Only used with PreserveState.
type Stateful interface {
	SaveState() Snapshot
	RestoreState(s Snapshot)
}

// Disposer instances are told when they are torn down for good.
type Disposer interface {
	Dispose()
}

// Host places mounted instances into the two physical render slots.
// Mount is called when an instance enters slot, Unmount when it leaves.
type Host interface {
	Mount(slot int, inst Instance)
	Unmount(slot int, inst Instance)
}

// NopHost ignores mount notifications.
type NopHost struct{}

func (NopHost) Mount(int, Instance)   {}
func (NopHost) Unmount(int, Instance) {}

func validView(v View) bool {
	return v != nil && v.ViewID() != ""
}

func dispose(inst Instance) {
	if d, ok := inst.(Disposer); ok {
		d.Dispose()
	}
}
