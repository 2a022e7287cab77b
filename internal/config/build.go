package config

import (
	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/grid"
	"github.com/comalice/ariax/internal/primitives"
)

// BuildItems creates the configured items and returns them with the
// identities marked selected. elementFor may be nil.
func (c *ListboxConfig) BuildItems(elementFor func(i int, label string) primitives.Element) ([]behavior.Item, []uuid.UUID) {
	items := make([]behavior.Item, len(c.Items))
	var selected []uuid.UUID
	for i, ic := range c.Items {
		opts := []behavior.ItemOption{
			behavior.WithLabel(ic.Label),
			behavior.WithItemDisabled(primitives.Const(ic.Disabled)),
		}
		if elementFor != nil {
			opts = append(opts, behavior.WithElement(elementFor(i, ic.Label)))
		}
		items[i] = behavior.NewItem(opts...)
		if ic.Selected {
			selected = append(selected, items[i].Identity)
		}
	}
	return items, selected
}

// BuildRows creates the configured cells. focusFor returns the focus
// function for a cell or widget label and may be nil.
func (c *GridConfig) BuildRows(focusFor func(label string) func()) [][]*grid.Cell {
	focus := func(label string) func() {
		if focusFor == nil {
			return nil
		}
		return focusFor(label)
	}
	rows := make([][]*grid.Cell, len(c.Rows))
	for r, row := range c.Rows {
		for _, cc := range row {
			widgets := make([]*grid.Widget, len(cc.Widgets))
			for i, wc := range cc.Widgets {
				opts := []grid.WidgetOption{
					grid.WithWidgetLabel(wc.Label),
					grid.WithWidgetDisabled(primitives.Const(wc.Disabled)),
					grid.WithWidgetFocus(focus(wc.Label)),
				}
				if wc.Editable {
					opts = append(opts, grid.Editable())
				}
				if wc.UsesArrowKeys {
					opts = append(opts, grid.UsesArrowKeys())
				}
				widgets[i] = grid.NewWidget(opts...)
			}
			rows[r] = append(rows[r], grid.NewCell(
				grid.WithLabel(cc.Label),
				grid.WithSpan(cc.RowSpan, cc.ColSpan),
				grid.WithDisabled(primitives.Const(cc.Disabled)),
				grid.WithWidgets(widgets...),
				grid.WithFocus(focus(cc.Label)),
			))
		}
	}
	return rows
}
