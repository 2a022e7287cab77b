package behavior

import (
	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/primitives"
)

// ActiveDescendantFocus keeps DOM focus on the list element and points
// aria-activedescendant at the active item. Items are never tabbable.
func ActiveDescendantFocus() primitives.Descriptor {
	return primitives.Descriptor{
		Name: "active-descendant",
		Transitions: map[string]primitives.TransitionFunc{
			ActiveDescendantID.Name(): func(s *primitives.State, _ any) any {
				item, ok := activeItem(s)
				if !ok {
					return ""
				}
				return item.ID
			},
			Tabindex.Name(): func(s *primitives.State, _ any) any {
				if Disabled.Get(s) {
					return -1
				}
				return 0
			},
			Items.Name(): func(_ *primitives.State, prev any) any {
				items := primitives.As[[]Item](prev)
				out := make([]Item, len(items))
				for i, it := range items {
					it.Tabindex = primitives.Const(-1)
					out[i] = it
				}
				return out
			},
			Focused.Name(): func(s *primitives.State, prev any) any {
				el := ElementProp.Get(s)
				if primitives.HasFocus(DocumentProp.Get(s), el) {
					return primitives.RequestFocus(el)
				}
				return prev
			},
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.FocusIn: func(m *primitives.Mutable, s *primitives.State, _ *primitives.Event) {
				if !Disabled.Get(s) {
					_ = Focused.Set(m, primitives.RequestFocus(ElementProp.Get(s)))
				}
			},
		},
	}
}

// RovingTabindexFocus moves DOM focus to the active item itself. Exactly one
// item is tabbable: the active one, or the first activatable item when the
// active item is missing or disabled.
func RovingTabindexFocus() primitives.Descriptor {
	return primitives.Descriptor{
		Name: "roving-tabindex",
		Transitions: map[string]primitives.TransitionFunc{
			Focused.Name(): func(s *primitives.State, prev any) any {
				if primitives.HasFocus(DocumentProp.Get(s), ElementProp.Get(s)) {
					item, _ := activeItem(s)
					return primitives.RequestFocus(item.Element)
				}
				return prev
			},
			Active.Name(): func(s *primitives.State, prev any) any {
				items := Items.Get(s)
				item, ok := FindItem(items, primitives.As[uuid.UUID](prev))
				if ok && !item.IsDisabled() {
					return item.Identity
				}
				if first, ok := FirstActivatable(items); ok {
					return first.Identity
				}
				return uuid.Nil
			},
			Tabindex.Name():           func(*primitives.State, any) any { return -1 },
			ActiveDescendantID.Name(): func(*primitives.State, any) any { return "" },
			Items.Name(): func(s *primitives.State, prev any) any {
				items := primitives.As[[]Item](prev)
				out := make([]Item, len(items))
				for i, it := range items {
					id := it.Identity
					it.Tabindex = primitives.NewComputed(func() int {
						if !Disabled.Get(s) && Active.Get(s) == id {
							return 0
						}
						return -1
					})
					out[i] = it
				}
				return out
			},
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.FocusIn: func(m *primitives.Mutable, s *primitives.State, _ *primitives.Event) {
				if Disabled.Get(s) {
					return
				}
				item, _ := activeItem(s)
				_ = Focused.Set(m, primitives.RequestFocus(item.Element))
			},
			primitives.FocusOut: func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				items := Items.Get(s)
				if ev.Target == nil || Contains(items, ev.Target) {
					return
				}
				// the focused item was removed from the list
				if first, ok := FirstActivatable(items); ok {
					_ = Focused.Set(m, primitives.RequestFocus(first.Element))
				}
			},
		},
	}
}
