package behavior

import (
	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/primitives"
)

// ListNavigationOptions configures ListNavigation.
type ListNavigationOptions struct {
	// Wrap moves from the last item to the first and back.
	Wrap bool
}

// ListNavigation moves the active item with the arrow keys. Vertical lists
// use ArrowDown and ArrowUp; horizontal lists use ArrowRight and ArrowLeft,
// mirrored under RTL. Home and End jump to the first and last activatable
// item. Disabled items are skipped.
//
// Handlers write activated; active is derived from it and resolves to the
// nil identity when the requested item is disabled or gone.
func ListNavigation(opts ListNavigationOptions) primitives.Descriptor {
	return primitives.Descriptor{
		Name: "list-navigation",
		Transitions: map[string]primitives.TransitionFunc{
			Activated.Name(): identity,
			Active.Name(): func(s *primitives.State, prev any) any {
				id := Activated.Get(s)
				if id == uuid.Nil {
					id = primitives.As[uuid.UUID](prev)
				}
				item, ok := FindItem(Items.Get(s), id)
				if !ok || item.IsDisabled() {
					return uuid.Nil
				}
				return item.Identity
			},
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.KeyDown: func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				navigate(m, s, ev, opts.Wrap)
			},
		},
	}
}

func navigate(m *primitives.Mutable, s *primitives.State, ev *primitives.Event, wrap bool) {
	next, prev := primitives.KeyArrowDown, primitives.KeyArrowUp
	if OrientationProp.Get(s) == Horizontal {
		next, prev = primitives.KeyArrowRight, primitives.KeyArrowLeft
		if DirectionProp.Get(s) == RTL {
			next, prev = prev, next
		}
	}
	switch ev.Key {
	case next:
		step(m, s, 1, wrap)
	case prev:
		step(m, s, -1, wrap)
	case primitives.KeyHome:
		edge(m, s, 1)
	case primitives.KeyEnd:
		edge(m, s, -1)
	default:
		return
	}
	ev.PreventDefault()
}

// step searches from the active index in direction dir for an activatable
// item. With wrap the search cycles once around the list; without it the
// search stops at the boundary.
func step(m *primitives.Mutable, s *primitives.State, dir int, wrap bool) {
	items := Items.Get(s)
	n := len(items)
	if n == 0 {
		return
	}
	current := IndexOf(items, Active.Get(s))
	i := current
	if i < 0 && dir < 0 && wrap {
		i = n
	}
	for range n {
		i = clamp(i+dir, n, wrap)
		if canActivate(s, items, i) {
			_ = Activated.Set(m, items[i].Identity)
			return
		}
		if i == current {
			return
		}
		if !wrap && ((dir > 0 && i >= n-1) || (dir < 0 && i <= 0)) {
			return
		}
	}
}

// edge activates the first (dir 1) or last (dir -1) activatable item.
func edge(m *primitives.Mutable, s *primitives.State, dir int) {
	items := Items.Get(s)
	i, end := 0, len(items)
	if dir < 0 {
		i, end = len(items)-1, -1
	}
	for ; i != end; i += dir {
		if canActivate(s, items, i) {
			_ = Activated.Set(m, items[i].Identity)
			return
		}
	}
}

func clamp(i, n int, wrap bool) int {
	if wrap {
		return ((i % n) + n) % n
	}
	return max(0, min(n-1, i))
}
