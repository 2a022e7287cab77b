// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/grid"
	"github.com/comalice/ariax/internal/primitives"
)

type element struct{}

func (element) Focus() {}

type document struct{}

func (document) HasFocus(primitives.Element) bool { return false }

// GenItems creates n enabled items labelled "item-i".
func GenItems(n int) []behavior.Item {
	items := make([]behavior.Item, n)
	for i := range n {
		items[i] = behavior.NewItem(
			behavior.WithLabel(fmt.Sprintf("item-%d", i)),
			behavior.WithElement(element{}),
		)
	}
	return items
}

// GenListboxState creates the initial listbox state over items and the
// dispatchers every listbox behavior needs.
func GenListboxState(items []behavior.Item) (*primitives.State, primitives.Dispatchers) {
	s := primitives.NewState(map[string]any{
		"element":            element{},
		"document":           document{},
		"items":              primitives.NewCell(items),
		"disabled":           primitives.NewCell(false),
		"active":             primitives.NewCell(uuid.Nil),
		"activated":          primitives.NewCell(uuid.Nil),
		"selected":           primitives.NewCell(uuid.Nil),
		"selection":          primitives.NewCell[[]uuid.UUID](nil),
		"tabindex":           primitives.NewCell(0),
		"activeDescendantId": primitives.NewCell(""),
		"focused":            primitives.NewCell[*primitives.FocusRequest](nil),
		"orientation":        primitives.NewCell(behavior.Vertical),
		"direction":          primitives.NewCell(behavior.LTR),
	})
	return s, primitives.NewDispatchers(primitives.KeyDown, primitives.FocusIn, primitives.FocusOut)
}

// GenChain creates n descriptors that each add one to "count" and handle
// keydown by bumping it.
func GenChain(n int) []primitives.Descriptor {
	ds := make([]primitives.Descriptor, n)
	for i := range n {
		ds[i] = primitives.Descriptor{
			Name: fmt.Sprintf("step%d", i),
			Transitions: map[string]primitives.TransitionFunc{
				"count": func(_ *primitives.State, prev any) any { return prev.(int) + 1 },
			},
			Events: map[primitives.EventType]primitives.EventHandler{
				primitives.KeyDown: func(m *primitives.Mutable, s *primitives.State, _ *primitives.Event) {
					_ = m.Set("count", s.Read("count").(int)+1)
				},
			},
		}
	}
	return ds
}

// GenGridRows creates a rows x cols grid of plain cells.
func GenGridRows(rows, cols int) [][]*grid.Cell {
	out := make([][]*grid.Cell, rows)
	for r := range rows {
		out[r] = make([]*grid.Cell, cols)
		for c := range cols {
			out[r][c] = grid.NewCell(grid.WithLabel(fmt.Sprintf("%d,%d", r, c)))
		}
	}
	return out
}

// GenListboxYAML generates a listbox configuration document with n items.
func GenListboxYAML(n int) []byte {
	items := make([]map[string]any, n)
	for i := range n {
		items[i] = map[string]any{"label": fmt.Sprintf("item-%d", i), "disabled": i%7 == 3}
	}
	doc := map[string]any{
		"listbox": map[string]any{
			"options": map[string]any{"wrapKeyNavigation": true, "typeahead": true},
			"items":   items,
		},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return data
}
