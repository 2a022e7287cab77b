// Package core provides the engine tier: composing behavior descriptors,
// applying them to a widget state, swapping them at runtime and attaching
// them with a connect/disconnect lifecycle.
// Dependencies: internal/primitives.
// Stdlib-only implementation.

package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/comalice/ariax/internal/primitives"
)

// Pluggable component interfaces.

// Change records a new value of one managed property.
type Change struct {
	Machine   string    `json:"machine" yaml:"machine"`
	Version   string    `json:"version" yaml:"version"`
	Property  string    `json:"property" yaml:"property"`
	Value     any       `json:"value" yaml:"value"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, change Change) error
	Close() error
}

type Visualizer interface {
	ExportDOT(d primitives.Descriptor, snapshot map[string]any) string
	ExportJSON(d primitives.Descriptor) ([]byte, error)
}

// Middleware wraps the composed handler of one event type at apply time.
type Middleware func(eventType primitives.EventType, machine string, h primitives.EventHandler) primitives.EventHandler

var ErrMissingDispatcher = errors.New("no dispatcher for handled event")

// Applied is a descriptor bound to a state: every managed property is a
// reactive value recomputed by its transition and every handler listens on
// its dispatcher until Release.
type Applied struct {
	descriptor primitives.Descriptor
	version    string
	state      *primitives.State
	mutable    *primitives.Mutable
	unlisten   []func()
	effects    []*primitives.Effect
	cfg        config
	released   bool
}

// Apply binds d to a copy of initial. Properties d does not manage are
// passed through by reference.
func Apply(initial *primitives.State, d primitives.Descriptor, ds primitives.Dispatchers, opts ...Option) (*Applied, error) {
	cfg := newConfig(opts)
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("apply %s: %w", d.Name, err)
	}
	for _, t := range d.Handled() {
		if ds[t] == nil {
			return nil, fmt.Errorf("apply %s: %w: %q", d.Name, ErrMissingDispatcher, t)
		}
	}

	a := &Applied{
		descriptor: d,
		version:    primitives.ComputeVersion(d),
		cfg:        cfg,
	}
	result := initial.Clone()
	writers := make(map[string]primitives.AnySetter, len(d.Transitions))
	linked := make(map[string]*primitives.Linked[any], len(d.Transitions))
	for _, name := range d.Managed() {
		transition := d.Transitions[name]
		base, _ := initial.Get(name)
		l := primitives.NewLinked(func() any {
			return transition(result, primitives.ReadAny(base))
		})
		result.Set(name, l)
		writers[name] = l
		linked[name] = l
	}
	a.state = result
	a.mutable = primitives.NewMutable(writers)

	for _, t := range d.Handled() {
		h := d.Events[t]
		for _, mw := range cfg.middleware {
			h = mw(t, d.Name, h)
		}
		a.unlisten = append(a.unlisten, ds[t].Listen(func(ev *primitives.Event) {
			h(a.mutable, result, ev)
		}))
	}

	if cfg.publisher != nil {
		for _, name := range d.Managed() {
			l := linked[name]
			a.effects = append(a.effects, primitives.NewEffect(func() {
				v := l.Get()
				change := Change{Machine: d.Name, Version: a.version, Property: name, Value: v, Timestamp: time.Now()}
				if err := cfg.publisher.Publish(context.Background(), change); err != nil {
					cfg.logger.Warn("publish failed", "machine", d.Name, "property", name, "error", err)
				}
			}))
		}
	}

	cfg.logger.Debug("descriptor applied",
		"machine", d.Name,
		"version", a.version,
		"managed", d.Managed(),
		"events", d.Handled(),
	)
	return a, nil
}

// State returns the applied state.
func (a *Applied) State() *primitives.State { return a.state }

// Descriptor returns the applied descriptor.
func (a *Applied) Descriptor() primitives.Descriptor { return a.descriptor }

// Version returns the descriptor identity computed at apply time.
func (a *Applied) Version() string { return a.version }

// Mutable returns the write view over every managed property.
func (a *Applied) Mutable() *primitives.Mutable { return a.mutable }

// Released reports whether Release has been called.
func (a *Applied) Released() bool { return a.released }

// Release disconnects every handler and stops change publishing. The applied
// state keeps its last values. Idempotent.
func (a *Applied) Release() {
	if a.released {
		return
	}
	a.released = true
	for _, unlisten := range a.unlisten {
		unlisten()
	}
	for _, e := range a.effects {
		e.Stop()
	}
	a.unlisten = nil
	a.effects = nil
	a.cfg.logger.Debug("descriptor released", "machine", a.descriptor.Name, "version", a.version)
}

// Visualize returns the DOT rendering of the application, or "" without a Visualizer.
func (a *Applied) Visualize() string {
	if a.cfg.visualizer == nil {
		return ""
	}
	return a.cfg.visualizer.ExportDOT(a.descriptor, a.state.Snapshot())
}

type config struct {
	logger     *slog.Logger
	publisher  Publisher
	visualizer Visualizer
	middleware []Middleware
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
