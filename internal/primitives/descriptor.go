// Descriptor is the declarative definition of one behavior: the state
// properties it manages (one transition per property) and the events it
// handles. Descriptors have no identity and no lifecycle; they are applied to
// a State by the core package.
//
// Validation rejects descriptors that could never be applied: empty
// property names and nil transition or handler functions.

package primitives

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrInvalidDescriptor is returned by Descriptor.Validate.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// TransitionFunc maps the previous value of one property to its next value.
// s is the applied state, so reads observe sibling properties of the same
// application.
type TransitionFunc func(s *State, prev any) any

// EventHandler reacts to an event by writing managed properties through m.
type EventHandler func(m *Mutable, s *State, ev *Event)

// Descriptor defines a behavior.
type Descriptor struct {
	Name        string
	Transitions map[string]TransitionFunc
	Events      map[EventType]EventHandler
}

// Managed returns the property names with a transition, sorted.
func (d Descriptor) Managed() []string {
	names := make([]string, 0, len(d.Transitions))
	for n := range d.Transitions {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Handled returns the event types with a handler, sorted.
func (d Descriptor) Handled() []EventType {
	types := make([]EventType, 0, len(d.Events))
	for t := range d.Events {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Manages reports whether d has a transition for name.
func (d Descriptor) Manages(name string) bool {
	_, ok := d.Transitions[name]
	return ok
}

// Validate checks that every transition and handler is usable.
func (d Descriptor) Validate() error {
	for name, fn := range d.Transitions {
		if name == "" {
			return fmt.Errorf("%s: %w: empty property name", d.Name, ErrInvalidDescriptor)
		}
		if fn == nil {
			return fmt.Errorf("%s: %w: nil transition for %q", d.Name, ErrInvalidDescriptor, name)
		}
	}
	for t, h := range d.Events {
		if t == "" {
			return fmt.Errorf("%s: %w: empty event type", d.Name, ErrInvalidDescriptor)
		}
		if h == nil {
			return fmt.Errorf("%s: %w: nil handler for %q", d.Name, ErrInvalidDescriptor, t)
		}
	}
	return nil
}
