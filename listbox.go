package ariax

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
	"github.com/comalice/ariax/internal/production"
)

type listboxConfig struct {
	options  ListboxOptions
	selected []uuid.UUID
	active   uuid.UUID
	disabled bool
	logger   *slog.Logger
	core     []core.Option
	extra    []Descriptor
}

// ListboxOption configures NewListbox.
type ListboxOption func(*listboxConfig)

// WithOptions sets the behavior options. The default is DefaultListboxOptions.
func WithOptions(o ListboxOptions) ListboxOption {
	return func(c *listboxConfig) { c.options = o }
}

// WithSelected preselects items. More than one requires Multiple.
func WithSelected(ids ...uuid.UUID) ListboxOption {
	return func(c *listboxConfig) { c.selected = ids }
}

// WithActive sets the initially active item.
func WithActive(id uuid.UUID) ListboxOption {
	return func(c *listboxConfig) { c.active = id }
}

// WithDisabled starts the listbox disabled.
func WithDisabled(disabled bool) ListboxOption {
	return func(c *listboxConfig) { c.disabled = disabled }
}

// WithLogger sets the logger for the listbox and its engine.
func WithLogger(logger *slog.Logger) ListboxOption {
	return func(c *listboxConfig) {
		c.logger = logger
		c.core = append(c.core, core.WithLogger(logger))
	}
}

// WithPublisher publishes every change of a managed property.
func WithPublisher(p core.Publisher) ListboxOption {
	return func(c *listboxConfig) { c.core = append(c.core, core.WithPublisher(p)) }
}

// WithVisualizer sets the renderer used by Visualize.
func WithVisualizer(v core.Visualizer) ListboxOption {
	return func(c *listboxConfig) { c.core = append(c.core, core.WithVisualizer(v)) }
}

// WithMiddleware wraps the composed event handlers.
func WithMiddleware(mw ...core.Middleware) ListboxOption {
	return func(c *listboxConfig) { c.core = append(c.core, core.WithMiddleware(mw...)) }
}

// WithBehaviors composes extra descriptors after the built-in ones.
func WithBehaviors(ds ...Descriptor) ListboxOption {
	return func(c *listboxConfig) { c.extra = append(c.extra, ds...) }
}

// ItemState is the derived state of one item.
type ItemState struct {
	Tabindex int
	Active   bool
	Selected bool
	Disabled bool
}

// Listbox is a single or multiple selection list. The behaviors it composes
// follow its options and are swapped in place when they change.
type Listbox struct {
	options ListboxOptions
	extra   []Descriptor
	logger  *slog.Logger

	items       *primitives.Cell[[]Item]
	disabled    *primitives.Cell[bool]
	orientation *primitives.Cell[Orientation]
	direction   *primitives.Cell[Direction]
	descriptor  *primitives.Cell[Descriptor]

	ds       primitives.Dispatchers
	dynamic  *core.DynamicApplied
	watchers []*primitives.Effect
	closed   bool
}

// NewListbox builds a listbox over items. element is the list container and
// document answers focus queries.
func NewListbox(element Element, document Document, items []Item, opts ...ListboxOption) (*Listbox, error) {
	cfg := listboxConfig{options: DefaultListboxOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	d, err := buildListbox(cfg.options, cfg.selected, cfg.extra)
	if err != nil {
		return nil, err
	}

	var selected uuid.UUID
	if len(cfg.selected) > 0 {
		selected = cfg.selected[0]
	}
	l := &Listbox{
		options:     cfg.options,
		extra:       cfg.extra,
		logger:      cfg.logger,
		items:       primitives.NewCell(items),
		disabled:    primitives.NewCell(cfg.disabled),
		orientation: primitives.NewCell(Orientation(cfg.options.Orientation)),
		direction:   primitives.NewCell(Direction(cfg.options.Direction)),
		descriptor:  primitives.NewCell(d),
		ds:          primitives.NewDispatchers(primitives.KeyDown, primitives.FocusIn, primitives.FocusOut),
	}
	initial := primitives.NewState(map[string]any{
		behavior.ElementProp.Name():        element,
		behavior.DocumentProp.Name():       document,
		behavior.Items.Name():              l.items,
		behavior.Disabled.Name():           l.disabled,
		behavior.Active.Name():             primitives.NewCell(cfg.active),
		behavior.Activated.Name():          primitives.NewCell(uuid.Nil),
		behavior.Selected.Name():           primitives.NewCell(selected),
		behavior.Selection.Name():          primitives.NewCell(slices.Clone(cfg.selected)),
		behavior.Tabindex.Name():           primitives.NewCell(0),
		behavior.ActiveDescendantID.Name(): primitives.NewCell(""),
		behavior.Focused.Name():            primitives.NewCell[*primitives.FocusRequest](nil),
		behavior.OrientationProp.Name():    l.orientation,
		behavior.DirectionProp.Name():      l.direction,
	})
	l.dynamic, err = core.ApplyDynamic(initial, l.descriptor, l.ds, cfg.core...)
	if err != nil {
		return nil, fmt.Errorf("listbox: %w", err)
	}
	return l, nil
}

// buildListbox composes navigation, a focus strategy and a selection
// strategy, in that order, followed by typeahead and any extra behaviors.
func buildListbox(o ListboxOptions, selected []uuid.UUID, extra []Descriptor) (Descriptor, error) {
	if err := o.Validate(); err != nil {
		return Descriptor{}, err
	}
	parts := []Descriptor{behavior.ListNavigation(behavior.ListNavigationOptions{Wrap: o.WrapKeyNavigation})}
	if o.UseActiveDescendant {
		parts = append(parts, behavior.ActiveDescendantFocus())
	} else {
		parts = append(parts, behavior.RovingTabindexFocus())
	}
	sel := behavior.SelectionOptions{Multiple: o.Multiple, Preselected: selected}
	var (
		selection Descriptor
		err       error
	)
	if o.SelectionFollowsFocus {
		selection, err = behavior.SelectionFollowsFocus(sel)
	} else {
		selection, err = behavior.SelectionOnCommit(sel)
	}
	if err != nil {
		return Descriptor{}, err
	}
	parts = append(parts, selection)
	if o.Typeahead {
		parts = append(parts, behavior.Typeahead())
	}
	return core.Compose(append(parts, extra...)...), nil
}

func (l *Listbox) state() *primitives.State {
	return l.dynamic.State()
}

// Options returns the current behavior options.
func (l *Listbox) Options() ListboxOptions { return l.options }

// SetOptions swaps the composed behaviors. Properties managed both before
// and after keep their current values. Invalid options change nothing.
func (l *Listbox) SetOptions(o ListboxOptions) error {
	d, err := buildListbox(o, l.Selection(), l.extra)
	if err != nil {
		return err
	}
	l.options = o
	primitives.Batch(func() {
		l.orientation.Set(Orientation(o.Orientation))
		l.direction.Set(Direction(o.Direction))
		l.descriptor.Set(d)
	})
	if err := l.dynamic.Err(); err != nil {
		return fmt.Errorf("listbox: %w", err)
	}
	l.logger.Debug("listbox options changed", "version", l.dynamic.Applied().Version())
	return nil
}

// SetItems replaces the items. The active item and the selection are kept
// when their identities are still present.
func (l *Listbox) SetItems(items []Item) { l.items.Set(items) }

// SetDisabled disables or enables the whole listbox.
func (l *Listbox) SetDisabled(disabled bool) { l.disabled.Set(disabled) }

// Dispatch routes ev to the handlers of its type.
func (l *Listbox) Dispatch(ev *Event) {
	if l.closed {
		return
	}
	l.ds.Dispatch(ev)
}

// KeyDown dispatches a keydown event and reports whether a behavior handled
// it. A handled key's default action should be suppressed by the host.
func (l *Listbox) KeyDown(key string) bool {
	ev := primitives.NewKeyEvent(key)
	l.Dispatch(ev)
	return ev.DefaultPrevented()
}

// FocusIn reports that target received focus inside the listbox.
func (l *Listbox) FocusIn(target Element) {
	l.Dispatch(primitives.NewFocusEvent(primitives.FocusIn, target))
}

// FocusOut reports that focus moved to target, which may be nil.
func (l *Listbox) FocusOut(target Element) {
	l.Dispatch(primitives.NewFocusEvent(primitives.FocusOut, target))
}

// Items returns the items as the composed behaviors see them.
func (l *Listbox) Items() []Item { return behavior.Items.Get(l.state()) }

func (l *Listbox) Active() uuid.UUID { return behavior.Active.Get(l.state()) }

func (l *Listbox) Selected() uuid.UUID { return behavior.Selected.Get(l.state()) }

// Selection returns the selected identities still present in the items.
func (l *Listbox) Selection() []uuid.UUID { return behavior.SelectedItems(l.state()) }

// Tabindex returns the tabindex of the list container.
func (l *Listbox) Tabindex() int { return behavior.Tabindex.Get(l.state()) }

// ActiveDescendantID returns the aria-activedescendant value, empty when
// the focus strategy is roving tabindex or nothing is active.
func (l *Listbox) ActiveDescendantID() string {
	return behavior.ActiveDescendantID.Get(l.state())
}

func (l *Listbox) Disabled() bool { return behavior.Disabled.Get(l.state()) }

// Item returns the derived state of the item with identity id.
func (l *Listbox) Item(id uuid.UUID) (ItemState, bool) {
	s := l.state()
	it, ok := behavior.FindItem(behavior.Items.Get(s), id)
	if !ok {
		return ItemState{}, false
	}
	return ItemState{
		Tabindex: it.TabindexValue(),
		Active:   behavior.Active.Get(s) == id,
		Selected: slices.Contains(behavior.SelectedItems(s), id),
		Disabled: it.IsDisabled(),
	}, true
}

// OnFocusRequest calls fn with the target of every new focus request until
// stop is called. A request pending at subscription is not replayed.
func (l *Listbox) OnFocusRequest(fn func(Element)) (stop func()) {
	last := primitives.Untracked(func() *primitives.FocusRequest {
		return behavior.Focused.Get(l.state())
	})
	e := primitives.NewEffect(func() {
		req := behavior.Focused.Get(l.state())
		if req == nil || req == last {
			return
		}
		last = req
		primitives.Untracked(func() struct{} {
			fn(req.Target)
			return struct{}{}
		})
	})
	l.watchers = append(l.watchers, e)
	return e.Stop
}

// Descriptor returns the composed descriptor currently applied.
func (l *Listbox) Descriptor() Descriptor { return l.dynamic.Applied().Descriptor() }

// Version returns the structural version of the applied descriptor.
func (l *Listbox) Version() string { return l.dynamic.Applied().Version() }

// Migrations returns how each options change carried or reset properties.
func (l *Listbox) Migrations() []core.Migration { return l.dynamic.Migrations() }

// Snapshot captures every property of the listbox.
func (l *Listbox) Snapshot() production.Snapshot {
	return production.NewSnapshot(l.dynamic.Applied())
}

// Visualize renders the applied descriptor and current values as DOT.
func (l *Listbox) Visualize() string { return l.dynamic.Applied().Visualize() }

// Close detaches every handler and watcher. Events dispatched afterwards
// are ignored.
func (l *Listbox) Close() {
	if l.closed {
		return
	}
	l.closed = true
	for _, e := range l.watchers {
		e.Stop()
	}
	l.dynamic.Release()
}
