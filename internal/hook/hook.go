// Package hook routes input events to a stack of cooperating modal tasks.
//
// Each hook watches a set of event types. Per type, the most recently added
// active hook gets the event, unless its filter declines it, in which case
// the next older one is offered the event. Hooks are finished explicitly;
// finishing a hook finishes the hooks attached to it first.
//
// Dispatch is single threaded: a hook handles one event to completion before
// the next is looked at, so multi-step gestures keep their progress in plain
// fields between events.
package hook

import (
	"fmt"
	"slices"
)

// Maker sets a new hook up: it must declare the watched types and either an
// event loop, a step function, or both.
type Maker func(h *Hook)

type Hook struct {
	d       *Dispatch
	watched Types
	done    bool

	// Filter, when set, decides whether the hook takes an event or lets it
	// fall through to older hooks.
	Filter func(Event) bool

	loop       func(Event)
	step       func(Event) bool
	stepFilter func(Event) bool

	attached []*Hook
	cleanup  []func()
}

// Watch replaces the watched set. Types added after the hook was registered
// are registered too.
func (h *Hook) Watch(ts Types) {
	added := ts.Minus(h.watched)
	h.watched = ts
	if h.d != nil && !h.done {
		h.d.track(h, added)
	}
}

// WatchMore adds ts to the watched set.
func (h *Hook) WatchMore(ts Types) { h.Watch(h.watched.With(ts)) }

func (h *Hook) Watched() Types { return h.watched }

// Loop makes f handle every delivered event the step function does not take.
// Passing nil stops the loop.
func (h *Hook) Loop(f func(Event)) { h.loop = f }

// Steps makes f advance the hook's gesture on every delivered event accepted
// by filter (all of them when filter is nil); other events go to the loop.
// The hook finishes once f returns false.
func (h *Hook) Steps(f func(Event) bool, filter func(Event) bool) {
	if filter == nil {
		filter = func(Event) bool { return true }
	}
	h.step, h.stepFilter = f, filter
}

// OnFinish registers a cleanup. Cleanups run once, newest first.
func (h *Hook) OnFinish(f func()) { h.cleanup = append(h.cleanup, f) }

// Attach binds child's lifetime to h. It does not change dispatch order.
func (h *Hook) Attach(child *Hook) { h.attached = append(h.attached, child) }

func (h *Hook) Active() bool { return !h.done && !h.watched.Empty() }

func (h *Hook) Dispatch() *Dispatch { return h.d }

// Finish deactivates h and everything attached to it, then runs its
// cleanups. It is idempotent.
func (h *Hook) Finish() {
	if h.done {
		return
	}
	h.done = true
	h.watched = 0
	for _, sub := range h.attached {
		sub.Finish()
	}
	for i := len(h.cleanup) - 1; i >= 0; i-- {
		h.cleanup[i]()
	}
	h.cleanup = nil
}

func (h *Hook) call(ev Event) {
	if h.step != nil && h.stepFilter(ev) {
		if !h.step(ev) {
			h.Finish()
		}
		return
	}
	if h.loop != nil {
		h.loop(ev)
	}
}

// Dispatch keeps, per event type, the hooks watching it in the order they
// were added.
type Dispatch struct {
	stacks map[Type][]*Hook
}

func NewDispatch() *Dispatch {
	return &Dispatch{stacks: make(map[Type][]*Hook)}
}

// Add builds a hook with make and registers it under every type it watches.
// A hook that comes out of make watching nothing and not finished is a bug
// and panics.
func (d *Dispatch) Add(make Maker) *Hook {
	h := &Hook{}
	make(h)
	if h.done {
		return h
	}
	if h.watched.Empty() {
		panic("hook: no watched event types")
	}
	h.d = d
	d.track(h, h.watched)
	return h
}

func (d *Dispatch) track(h *Hook, ts Types) {
	for t := Type(0); t < numTypes; t++ {
		if ts.Has(t) && !slices.Contains(d.stacks[t], h) {
			d.stacks[t] = append(d.stacks[t], h)
		}
	}
}

// Watched lists the types some hook is registered for.
func (d *Dispatch) Watched() Types {
	var s Types
	for t := range d.stacks {
		s = s.With(Of(t))
	}
	return s
}

// Dispatch delivers events in order, each to at most one hook.
func (d *Dispatch) Dispatch(events ...Event) {
	for _, ev := range events {
		d.dispatch(ev)
	}
}

func (d *Dispatch) dispatch(ev Event) {
	stack, ok := d.stacks[ev.Type]
	if !ok {
		return
	}
	live := stack[:0]
	for _, h := range stack {
		if h.Active() && h.watched.Has(ev.Type) {
			live = append(live, h)
		}
	}
	clear(stack[len(live):])
	if len(live) == 0 {
		delete(d.stacks, ev.Type)
		return
	}
	d.stacks[ev.Type] = live
	// hooks added while handling ev append to the stored stack, not to this
	// snapshot
	snapshot := live[:len(live):len(live)]
	for i := len(snapshot) - 1; i >= 0; i-- {
		h := snapshot[i]
		if h.Filter == nil || h.Filter(ev) {
			h.call(ev)
			return
		}
	}
}

func (d *Dispatch) String() string {
	s := "dispatch"
	for t := Type(0); t < numTypes; t++ {
		if n := len(d.stacks[t]); n > 0 {
			s += fmt.Sprintf(" %v:%d", t, n)
		}
	}
	return s
}
