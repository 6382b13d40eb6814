// Package nav implements a navigation controller: an ordered stack of views
// shown one at a time, with an animated transition between the top view and
// the one beneath it on every push or pop.
//
// Core pieces:
//   - Controller: owns the stack, the two render slots, the view-state buffer
//     and the in-flight guard; exposes Push, Pop, PopToRoot and SetViews.
//   - View / Instance: a View is an opaque stack entry; an Instance is what is
//     actually mounted in a slot. Instances may implement the lifecycle hooks
//     (WillHider, DidHider, WillShower, DidShower) and Stateful.
//   - Host: the mount/unmount boundary to whatever draws the instances.
//
// Only one operation runs at a time. A call made while a transition is in
// flight returns nil without doing anything, so gesture handlers can fire
// repeatedly without checking state first.
//
// The controller is driven entirely by its frame.Scheduler and is not safe for
// concurrent use; call it from the same goroutine that flushes frames.
package nav
