package core

import (
	"errors"
	"fmt"

	"github.com/comalice/ariax/internal/primitives"
)

var ErrNotPatchable = errors.New("property is not a patch chain")

// Patchable is a property that behaviors can layer overrides on.
// *primitives.PatchChain[any] implements it.
type Patchable interface {
	Patch(fn func(parent any) any, opts ...primitives.PatchOption) primitives.Writable[any]
}

// Attachment is a descriptor bound to a state of patch chains. While
// connected, its transitions are live patches and its handlers receive
// events. Disconnecting freezes every patch at its last value and silences
// the handlers; later upstream changes pass through unmodified.
type Attachment struct {
	descriptor  primitives.Descriptor
	state       *primitives.State
	ds          primitives.Dispatchers
	cfg         config
	connected   *primitives.Cell[bool]
	initialized bool
	unlisten    []func()
}

// Attach checks that every property d manages is Patchable and that every
// event it handles has a dispatcher. Nothing is patched until Connect.
func Attach(state *primitives.State, d primitives.Descriptor, ds primitives.Dispatchers, opts ...Option) (*Attachment, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("attach %s: %w", d.Name, err)
	}
	for _, name := range d.Managed() {
		v, _ := state.Get(name)
		if _, ok := v.(Patchable); !ok {
			return nil, fmt.Errorf("attach %s: %w: %q", d.Name, ErrNotPatchable, name)
		}
	}
	for _, t := range d.Handled() {
		if ds[t] == nil {
			return nil, fmt.Errorf("attach %s: %w: %q", d.Name, ErrMissingDispatcher, t)
		}
	}
	return &Attachment{
		descriptor: d,
		state:      state,
		ds:         ds,
		cfg:        newConfig(opts),
		connected:  primitives.NewCell(false),
	}, nil
}

// Connect makes the attachment live. The first call installs the patches
// and listeners; later calls only flip the connection flag.
func (a *Attachment) Connect() {
	primitives.Batch(func() {
		a.connected.Set(true)
		if !a.initialized {
			a.init()
			a.initialized = true
		}
	})
	a.cfg.logger.Debug("behavior connected", "machine", a.descriptor.Name)
}

// Disconnect freezes the attachment's patches and silences its handlers.
func (a *Attachment) Disconnect() {
	a.connected.Set(false)
	a.cfg.logger.Debug("behavior disconnected", "machine", a.descriptor.Name)
}

// Connected reports the connection flag.
func (a *Attachment) Connected() bool {
	return primitives.Untracked(a.connected.Get)
}

// Remove unregisters every listener. Patches stay in their chains.
func (a *Attachment) Remove() {
	for _, unlisten := range a.unlisten {
		unlisten()
	}
	a.unlisten = nil
}

func (a *Attachment) init() {
	writers := make(map[string]primitives.AnySetter, len(a.descriptor.Transitions))
	for _, name := range a.descriptor.Managed() {
		transition := a.descriptor.Transitions[name]
		v, _ := a.state.Get(name)
		w := v.(Patchable).Patch(func(parent any) any {
			return transition(a.state, parent)
		}, primitives.WithConnected(a.connected))
		writers[name] = anyWriter{w}
	}
	mutable := primitives.NewMutable(writers)
	for _, t := range a.descriptor.Handled() {
		h := a.descriptor.Events[t]
		for _, mw := range a.cfg.middleware {
			h = mw(t, a.descriptor.Name, h)
		}
		a.unlisten = append(a.unlisten, a.ds[t].Gated(a.connected).Listen(func(ev *primitives.Event) {
			h(mutable, a.state, ev)
		}))
	}
}

type anyWriter struct {
	w primitives.Writable[any]
}

func (a anyWriter) SetAny(v any) { a.w.Set(v) }
