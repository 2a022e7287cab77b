package core

import (
	"strings"

	"github.com/comalice/ariax/internal/primitives"
)

// Compose merges descriptors into one. For a property managed by several
// descriptors, each transition receives the previous descriptor's output as
// its previous value. For an event handled by several descriptors, the
// handlers run in argument order, each with write access limited to the
// properties its own descriptor manages. Compose is associative.
func Compose(ds ...primitives.Descriptor) primitives.Descriptor {
	result := primitives.Descriptor{
		Transitions: make(map[string]primitives.TransitionFunc),
		Events:      make(map[primitives.EventType]primitives.EventHandler),
	}
	var names []string
	for _, d := range ds {
		if d.Name != "" {
			names = append(names, d.Name)
		}
		for name, transform := range d.Transitions {
			prev := result.Transitions[name]
			if prev == nil {
				result.Transitions[name] = transform
				continue
			}
			result.Transitions[name] = func(s *primitives.State, v any) any {
				return transform(s, prev(s, v))
			}
		}
		owned := d.Managed()
		for t, h := range d.Events {
			restricted := func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				h(m.Restrict(owned...), s, ev)
			}
			prev := result.Events[t]
			if prev == nil {
				result.Events[t] = restricted
				continue
			}
			result.Events[t] = func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				prev(m, s, ev)
				restricted(m, s, ev)
			}
		}
	}
	result.Name = strings.Join(names, "+")
	return result
}
