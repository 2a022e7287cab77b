// Package builder assembles behavior descriptors from functional options.
package builder

import (
	"github.com/comalice/ariax/internal/primitives"
)

// Convenience aliases for handler and transition signatures.
type (
	Transition = primitives.TransitionFunc
	Handler    = primitives.EventHandler
)

// New creates a descriptor named name.
func New(name string, opts ...Option) primitives.Descriptor {
	d := primitives.Descriptor{
		Name:        name,
		Transitions: make(map[string]primitives.TransitionFunc),
		Events:      make(map[primitives.EventType]primitives.EventHandler),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Option pattern for configuring descriptors
type Option func(*primitives.Descriptor)

// Manage adds a transition for prop. A second Manage for the same prop
// replaces the first.
func Manage(prop string, fn Transition) Option {
	return func(d *primitives.Descriptor) { d.Transitions[prop] = fn }
}

// Passthrough manages props with the identity transition, which makes them
// writable from handlers without changing their derivation.
func Passthrough(props ...string) Option {
	return func(d *primitives.Descriptor) {
		for _, p := range props {
			d.Transitions[p] = func(_ *primitives.State, prev any) any { return prev }
		}
	}
}

// Derive manages prop with a transition that ignores the previous value.
func Derive[T any](prop primitives.Prop[T], fn func(s *primitives.State) T) Option {
	return func(d *primitives.Descriptor) {
		d.Transitions[prop.Name()] = func(s *primitives.State, _ any) any { return fn(s) }
	}
}

// On adds a handler for t, running after any handler already registered for t.
func On(t primitives.EventType, h Handler) Option {
	return func(d *primitives.Descriptor) {
		prev := d.Events[t]
		if prev == nil {
			d.Events[t] = h
			return
		}
		d.Events[t] = func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
			prev(m, s, ev)
			h(m, s, ev)
		}
	}
}

// OnKey adds a keydown handler that only runs for the given keys.
func OnKey(h Handler, keys ...string) Option {
	return On(primitives.KeyDown, func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
		for _, k := range keys {
			if ev.Key == k {
				h(m, s, ev)
				return
			}
		}
	})
}

// When wraps h so that it only runs while guard reports true.
func When(guard func(s *primitives.State, ev *primitives.Event) bool, h Handler) Handler {
	return func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
		if guard(s, ev) {
			h(m, s, ev)
		}
	}
}
