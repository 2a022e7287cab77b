package primitives

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnmanagedProperty is returned when a handler writes a property its
// machine does not declare.
var ErrUnmanagedProperty = errors.New("property is not managed by this machine")

// State is a widget's property bag. Values are either reactive (any Value)
// or static (element handles, documents, dispatchers).
type State struct {
	props map[string]any
}

// NewState creates a State from the given properties.
func NewState(props map[string]any) *State {
	s := &State{props: make(map[string]any, len(props))}
	maps.Copy(s.props, props)
	return s
}

// Clone returns a shallow copy. Reactive values are shared, not copied.
func (s *State) Clone() *State {
	return NewState(s.props)
}

// Get returns the raw property, reactive or not.
func (s *State) Get(name string) (any, bool) {
	v, ok := s.props[name]
	return v, ok
}

// Read returns the current value of a property, recording the read when it is reactive.
func (s *State) Read(name string) any {
	return ReadAny(s.props[name])
}

// Set stores a raw property value.
func (s *State) Set(name string, v any) {
	s.props[name] = v
}

// Keys returns the property names in sorted order.
func (s *State) Keys() []string {
	return slices.Sorted(maps.Keys(s.props))
}

// Snapshot returns the current value of every property without recording reads.
func (s *State) Snapshot() map[string]any {
	snap := make(map[string]any, len(s.props))
	for k, v := range s.props {
		snap[k] = Untracked(func() any { return ReadAny(v) })
	}
	return snap
}

// Prop is a typed property name.
type Prop[T any] string

// Name returns the property name.
func (p Prop[T]) Name() string { return string(p) }

// Get reads the property from s as T.
func (p Prop[T]) Get(s *State) T {
	return As[T](s.Read(string(p)))
}

// Set writes v through m.
func (p Prop[T]) Set(m *Mutable, v T) error {
	return m.Set(string(p), v)
}

// Mutable is a write view over the managed properties of an applied state.
type Mutable struct {
	writers map[string]AnySetter
	allowed map[string]bool
}

// NewMutable creates a view that can write every property in writers.
func NewMutable(writers map[string]AnySetter) *Mutable {
	return &Mutable{writers: writers}
}

// Restrict returns a view limited to names (and to what m already allows).
func (m *Mutable) Restrict(names ...string) *Mutable {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		if m.allowed == nil || m.allowed[n] {
			allowed[n] = true
		}
	}
	return &Mutable{writers: m.writers, allowed: allowed}
}

// Managed returns the writable property names in sorted order.
func (m *Mutable) Managed() []string {
	var names []string
	for n := range m.writers {
		if m.allowed == nil || m.allowed[n] {
			names = append(names, n)
		}
	}
	slices.Sort(names)
	return names
}

// Set writes v to the named property.
func (m *Mutable) Set(name string, v any) error {
	if m.allowed != nil && !m.allowed[name] {
		return fmt.Errorf("set %q: %w", name, ErrUnmanagedProperty)
	}
	w, ok := m.writers[name]
	if !ok {
		return fmt.Errorf("set %q: %w", name, ErrUnmanagedProperty)
	}
	w.SetAny(v)
	return nil
}
