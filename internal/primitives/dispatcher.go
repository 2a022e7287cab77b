package primitives

import (
	"slices"
	"sort"
)

// Listener receives dispatched events.
type Listener func(*Event)

// Source is anything listeners can subscribe to.
type Source interface {
	Listen(fn Listener) (unlisten func())
}

type listenerEntry struct {
	fn Listener
}

// Dispatcher is a synchronous many-listener channel for one event type.
type Dispatcher struct {
	listeners []*listenerEntry
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen registers fn and returns a function that unregisters it. Calling the
// returned function more than once is a no-op.
func (d *Dispatcher) Listen(fn Listener) func() {
	e := &listenerEntry{fn: fn}
	d.listeners = append(d.listeners, e)
	return func() {
		if i := slices.Index(d.listeners, e); i >= 0 {
			d.listeners = slices.Delete(d.listeners, i, i+1)
		}
	}
}

// Dispatch calls every listener registered at the time of the call, in
// registration order. Listeners added or removed while dispatching take
// effect from the next dispatch.
func (d *Dispatcher) Dispatch(ev *Event) {
	for _, e := range slices.Clone(d.listeners) {
		e.fn(ev)
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Gated returns a view of d whose listeners only receive events while
// connected reads true.
func (d *Dispatcher) Gated(connected Readable[bool]) Source {
	return gated{d: d, connected: connected}
}

type gated struct {
	d         *Dispatcher
	connected Readable[bool]
}

func (g gated) Listen(fn Listener) func() {
	return g.d.Listen(func(ev *Event) {
		if Untracked(g.connected.Get) {
			fn(ev)
		}
	})
}

// Dispatchers holds one Dispatcher per event type.
type Dispatchers map[EventType]*Dispatcher

// NewDispatchers creates a Dispatcher for each type.
func NewDispatchers(types ...EventType) Dispatchers {
	ds := make(Dispatchers, len(types))
	for _, t := range types {
		ds[t] = NewDispatcher()
	}
	return ds
}

// Dispatch routes ev to the dispatcher for ev.Type. Events with no dispatcher are dropped.
func (ds Dispatchers) Dispatch(ev *Event) {
	if d, ok := ds[ev.Type]; ok {
		d.Dispatch(ev)
	}
}

// Types returns the registered event types in sorted order.
func (ds Dispatchers) Types() []EventType {
	types := make([]EventType, 0, len(ds))
	for t := range ds {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
