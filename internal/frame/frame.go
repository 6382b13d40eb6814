// Package frame provides the "run this before the next repaint" primitive the
// navigation engine is driven by.
//
// Everything runs on one logical thread: callbacks are queued by the engine and
// executed by whoever owns the paint loop (a bubbletea program, a test) when it
// calls Flush. A callback requested while a flush is in progress runs on the
// following frame, never in the current one.
package frame

// Scheduler defers a callback to the next frame boundary.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// RequestFrame implements Scheduler.
func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// Queue is a FIFO Scheduler flushed manually once per frame.
// It is not safe for concurrent use.
type Queue struct {
	pending []func()
	frames  int
	armed   bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame implements Scheduler.
func (q *Queue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Frames returns how many non-empty frames have been flushed.
func (q *Queue) Frames() int {
	return q.frames
}

// Flush runs the callbacks queued before the call and returns how many ran.
func (q *Queue) Flush() int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	q.frames++
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// RunUntilIdle flushes frames until nothing is pending or max frames have run.
// Returns the number of frames flushed.
func (q *Queue) RunUntilIdle(max int) int {
	n := 0
	for n < max && q.Pending() > 0 {
		q.Flush()
		n++
	}
	return n
}

// Arm marks a tick as outstanding. It returns false if one already was,
// so callers keep at most one tick in flight.
func (q *Queue) Arm() bool {
	if q.armed {
		return false
	}
	q.armed = true
	return true
}

// Disarm clears the outstanding-tick mark. Call it when the tick arrives.
func (q *Queue) Disarm() {
	q.armed = false
}
