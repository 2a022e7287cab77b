package core

import (
	"slices"

	"github.com/comalice/ariax/internal/primitives"
)

// Migration describes how one descriptor swap treated each property.
type Migration struct {
	From    string
	To      string
	Carried []string // managed before and after; seeded with the last value
	Reset   []string // managed only before or only after; back to the initial value
}

// Reconcile builds the seed state for applying next after prev. Properties
// both descriptors manage start from prev's last value and follow the
// initial value again once it changes. Every other property is taken from
// initial unchanged. prev may be nil.
func Reconcile(initial *primitives.State, prev *Applied, next primitives.Descriptor) (*primitives.State, Migration) {
	seed := initial.Clone()
	m := Migration{To: primitives.ComputeVersion(next)}
	if prev == nil {
		return seed, m
	}
	m.From = prev.Version()
	before := prev.Descriptor()
	for _, name := range before.Managed() {
		if !next.Manages(name) {
			m.Reset = append(m.Reset, name)
			continue
		}
		base, _ := initial.Get(name)
		last := primitives.Untracked(func() any { return prev.State().Read(name) })
		l := primitives.NewLinked(func() any { return primitives.ReadAny(base) })
		l.Set(last)
		seed.Set(name, l)
		m.Carried = append(m.Carried, name)
	}
	for _, name := range next.Managed() {
		if !before.Manages(name) {
			m.Reset = append(m.Reset, name)
		}
	}
	slices.Sort(m.Reset)
	return seed, m
}

// DynamicApplied applies whichever descriptor a reactive value currently
// holds. On every change the previous application is released and a new one
// is applied from a reconciled seed.
type DynamicApplied struct {
	initial *primitives.State
	ds      primitives.Dispatchers
	opts    []Option
	cfg     config

	current *primitives.Computed[*Applied]
	watch   *primitives.Effect
	prev    *Applied
	err     error
	history []Migration
}

// ApplyDynamic applies descriptor's current value and re-applies whenever it
// changes. An error applying a later descriptor keeps the previous
// application in place and is reported by Err.
func ApplyDynamic(initial *primitives.State, descriptor primitives.Readable[primitives.Descriptor], ds primitives.Dispatchers, opts ...Option) (*DynamicApplied, error) {
	da := &DynamicApplied{
		initial: initial,
		ds:      ds,
		opts:    opts,
		cfg:     newConfig(opts),
	}
	da.current = primitives.NewComputed(func() *Applied {
		d := descriptor.Get()
		return primitives.Untracked(func() *Applied { return da.swap(d) })
	})
	if primitives.Untracked(da.current.Get) == nil {
		return nil, da.err
	}
	// Swap eagerly so stale handlers never see events after a descriptor change.
	da.watch = primitives.NewEffect(func() { da.current.Get() })
	return da, nil
}

func (da *DynamicApplied) swap(d primitives.Descriptor) *Applied {
	seed, migration := Reconcile(da.initial, da.prev, d)
	next, err := Apply(seed, d, da.ds, da.opts...)
	if err != nil {
		da.err = err
		da.cfg.logger.Error("descriptor swap failed", "machine", d.Name, "error", err)
		return da.prev
	}
	da.err = nil
	if da.prev != nil {
		da.prev.Release()
		da.history = append(da.history, migration)
		da.cfg.logger.Debug("descriptor swapped",
			"from", migration.From,
			"to", migration.To,
			"carried", migration.Carried,
			"reset", migration.Reset,
		)
	}
	da.prev = next
	return next
}

// Applied returns the current application, recording the read.
func (da *DynamicApplied) Applied() *Applied {
	return da.current.Get()
}

// State returns the current applied state, recording the read.
func (da *DynamicApplied) State() *primitives.State {
	return da.current.Get().State()
}

// Err returns the error from the most recent swap attempt, if any.
func (da *DynamicApplied) Err() error {
	return da.err
}

// Migrations returns the reconciliation record of every swap so far.
func (da *DynamicApplied) Migrations() []Migration {
	return slices.Clone(da.history)
}

// Release stops following the descriptor and releases the current application.
func (da *DynamicApplied) Release() {
	if da.watch != nil {
		da.watch.Stop()
	}
	if da.prev != nil {
		da.prev.Release()
	}
}
