// Package core defines the Registry of named behavior factories.
package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/comalice/ariax/internal/primitives"
)

var (
	ErrNotFound = errors.New("behavior not found")
	ErrExists   = errors.New("behavior already registered")
)

// Factory builds a descriptor. Factories may fail on invalid configuration.
type Factory func() (primitives.Descriptor, error)

// Registry maps behavior names to factories so that compositions can be
// described by name, for example in configuration files.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrExists)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrNotFound)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Build composes the named behaviors in the given order.
func (r *Registry) Build(names ...string) (primitives.Descriptor, error) {
	ds := make([]primitives.Descriptor, 0, len(names))
	for _, name := range names {
		f, err := r.Lookup(name)
		if err != nil {
			return primitives.Descriptor{}, err
		}
		d, err := f()
		if err != nil {
			return primitives.Descriptor{}, fmt.Errorf("build %q: %w", name, err)
		}
		ds = append(ds, d)
	}
	return Compose(ds...), nil
}
