package telemetry

import (
	"context"
	"strings"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Transition summarizes one ended navigation span.
type Transition struct {
	Op         string // push, pop, pop_to_root, set_views, init
	Kind       string // transition name, or "custom"
	Duration   time.Duration
	DepthAfter int
}

// Recent is a span processor that keeps the last few navigation spans.
type Recent struct {
	mu       sync.RWMutex
	items    []Transition // oldest first
	max      int
	onChange func()
}

var _ sdktrace.SpanProcessor = (*Recent)(nil)

// NewRecent keeps up to max transitions (default 10).
func NewRecent(max int) *Recent {
	if max <= 0 {
		max = 10
	}
	return &Recent{max: max, items: make([]Transition, 0, max)}
}

func (r *Recent) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd records spans named navctl.*; others are ignored.
func (r *Recent) OnEnd(s sdktrace.ReadOnlySpan) {
	op, ok := strings.CutPrefix(s.Name(), "navctl.")
	if !ok {
		return
	}
	t := Transition{Op: op, Duration: s.EndTime().Sub(s.StartTime())}
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case "navctl.transition":
			t.Kind = kv.Value.AsString()
		case "navctl.depth.after":
			t.DepthAfter = int(kv.Value.AsInt64())
		}
	}

	r.mu.Lock()
	r.items = append(r.items, t)
	if len(r.items) > r.max {
		r.items = r.items[1:]
	}
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (r *Recent) Shutdown(context.Context) error   { return nil }
func (r *Recent) ForceFlush(context.Context) error { return nil }

// List returns recorded transitions, newest first.
func (r *Recent) List() []Transition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Transition, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		result = append(result, r.items[i])
	}
	return result
}

// Last returns the newest transition, if any.
func (r *Recent) Last() (Transition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return Transition{}, false
	}
	return r.items[len(r.items)-1], true
}

// SetOnChange sets a callback run after every recorded transition.
func (r *Recent) SetOnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}
