package behavior

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/primitives"
)

// SelectionOptions configures the selection strategies.
type SelectionOptions struct {
	// Multiple allows more than one selected item. Only SelectionOnCommit
	// supports it.
	Multiple bool
	// Preselected is the selection the widget starts with.
	Preselected []uuid.UUID
}

func (o SelectionOptions) validateSingle(policy string) error {
	if o.Multiple {
		return fmt.Errorf("%s: a multiselectable listbox cannot use this policy: %w", policy, ErrMultipleSelection)
	}
	if len(o.Preselected) > 1 {
		return fmt.Errorf("%s: %d items preselected: %w", policy, len(o.Preselected), ErrMultipleSelection)
	}
	return nil
}

// selectionDisabled disables the list while the selected item is disabled.
func selectionDisabled(s *primitives.State, prev any) any {
	if primitives.As[bool](prev) {
		return true
	}
	item, ok := FindItem(Items.Get(s), Selected.Get(s))
	return ok && item.IsDisabled()
}

func singleSelection(s *primitives.State, _ any) any {
	if sel := Selected.Get(s); sel != uuid.Nil {
		return []uuid.UUID{sel}
	}
	return []uuid.UUID(nil)
}

// SelectionFollowsFocus selects whatever navigation activates. On focus the
// selected item becomes active again when it is present and enabled; with
// nothing selected the composed active item is left alone. Only single
// selection is supported.
func SelectionFollowsFocus(opts SelectionOptions) (primitives.Descriptor, error) {
	if err := opts.validateSingle("selection follows focus"); err != nil {
		return primitives.Descriptor{}, err
	}
	return primitives.Descriptor{
		Name: "selection-follows-focus",
		Transitions: map[string]primitives.TransitionFunc{
			Selected.Name(): func(s *primitives.State, prev any) any {
				if id := Activated.Get(s); id != uuid.Nil {
					return id
				}
				return prev
			},
			Disabled.Name():  selectionDisabled,
			Active.Name():    identity,
			Selection.Name(): singleSelection,
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.FocusIn: func(m *primitives.Mutable, s *primitives.State, _ *primitives.Event) {
				if Disabled.Get(s) {
					return
				}
				item, ok := FindItem(Items.Get(s), Selected.Get(s))
				if !ok || item.IsDisabled() {
					return
				}
				// activated is unmanaged without list navigation
				_ = Activated.Set(m, item.Identity)
				_ = Active.Set(m, item.Identity)
			},
		},
	}, nil
}

// SelectionOnCommit selects the active item on Enter or Space. In multiple
// mode commit toggles the active item and Ctrl+A selects every activatable
// item.
func SelectionOnCommit(opts SelectionOptions) (primitives.Descriptor, error) {
	selection := primitives.TransitionFunc(singleSelection)
	if opts.Multiple {
		selection = identity
	} else if err := opts.validateSingle("selection on commit"); err != nil {
		return primitives.Descriptor{}, err
	}
	return primitives.Descriptor{
		Name: "selection-on-commit",
		Transitions: map[string]primitives.TransitionFunc{
			Selected.Name():  identity,
			Disabled.Name():  selectionDisabled,
			Selection.Name(): selection,
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.KeyDown: func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				if Disabled.Get(s) {
					return
				}
				switch {
				case ev.Key == primitives.KeyEnter || ev.Key == primitives.KeySpace:
					commit(m, s, opts.Multiple)
					ev.PreventDefault()
				case opts.Multiple && ev.Ctrl && (ev.Key == "a" || ev.Key == "A"):
					selectAll(m, s)
					ev.PreventDefault()
				}
			},
		},
	}, nil
}

func commit(m *primitives.Mutable, s *primitives.State, multiple bool) {
	item, ok := activeItem(s)
	if !ok || item.IsDisabled() {
		return
	}
	_ = Selected.Set(m, item.Identity)
	if !multiple {
		return
	}
	sel := SelectedItems(s)
	if i := slices.Index(sel, item.Identity); i >= 0 {
		sel = slices.Delete(sel, i, i+1)
	} else {
		sel = append(sel, item.Identity)
	}
	_ = Selection.Set(m, sel)
}

func selectAll(m *primitives.Mutable, s *primitives.State) {
	var sel []uuid.UUID
	for _, it := range Items.Get(s) {
		if !it.IsDisabled() {
			sel = append(sel, it.Identity)
		}
	}
	_ = Selection.Set(m, sel)
}
