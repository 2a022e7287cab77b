// Package grid implements two-dimensional keyboard navigation over a grid of
// cells that may span several rows or columns and may contain interactive
// widgets.
//
// Core invariants:
//   - Coordinates are reassigned whenever the row structure changes: each
//     cell takes the first free column of its row and marks every slot it
//     covers, so spanning cells push later cells to the right.
//   - At most one cell and one widget are active. The active cell is
//     tabbable only while no widget is active.
//   - In widget mode the arrow keys cycle the widgets of the active cell.
package grid

import (
	"github.com/comalice/ariax/internal/primitives"
)

// RowCol is a zero-based grid coordinate.
type RowCol struct {
	Row, Col int
}

// Widget is an interactive element inside a cell.
type Widget struct {
	Index         int
	Label         string
	Editable      bool
	UsesArrowKeys bool
	Disabled      primitives.Readable[bool]
	Active        *primitives.Cell[bool]
	Tabindex      primitives.Readable[int]
	focus         func()
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// Editable marks a widget that consumes typed characters, such as a text field.
func Editable() WidgetOption {
	return func(w *Widget) { w.Editable = true }
}

// UsesArrowKeys marks a widget that handles the arrow keys itself.
func UsesArrowKeys() WidgetOption {
	return func(w *Widget) { w.UsesArrowKeys = true }
}

// WithWidgetLabel sets the widget label.
func WithWidgetLabel(label string) WidgetOption {
	return func(w *Widget) { w.Label = label }
}

// WithWidgetDisabled makes the widget's disabled flag follow r.
func WithWidgetDisabled(r primitives.Readable[bool]) WidgetOption {
	return func(w *Widget) { w.Disabled = r }
}

// WithWidgetFocus sets the function that moves DOM focus to the widget.
func WithWidgetFocus(fn func()) WidgetOption {
	return func(w *Widget) { w.focus = fn }
}

// NewWidget creates an inactive widget.
func NewWidget(opts ...WidgetOption) *Widget {
	w := &Widget{Active: primitives.NewCell(false)}
	for _, opt := range opts {
		opt(w)
	}
	w.Tabindex = primitives.NewComputed(func() int {
		if w.Active.Get() {
			return 0
		}
		return -1
	})
	return w
}

// Focus moves DOM focus to the widget.
func (w *Widget) Focus() {
	if w.focus != nil {
		w.focus()
	}
}

// Cell is a grid cell. RowIndex and ColIndex are assigned by the grid.
type Cell struct {
	RowIndex, ColIndex int
	RowSpan, ColSpan   int
	Label              string
	Disabled           primitives.Readable[bool]
	Widgets            []*Widget
	Active             *primitives.Cell[bool]
	Tabindex           primitives.Readable[int]
	focus              func()
}

// CellOption configures a Cell.
type CellOption func(*Cell)

// WithSpan sets the row and column span. Values below one are treated as one.
func WithSpan(rows, cols int) CellOption {
	return func(c *Cell) { c.RowSpan, c.ColSpan = max(1, rows), max(1, cols) }
}

// WithLabel sets the cell label.
func WithLabel(label string) CellOption {
	return func(c *Cell) { c.Label = label }
}

// WithDisabled makes the cell's disabled flag follow r.
func WithDisabled(r primitives.Readable[bool]) CellOption {
	return func(c *Cell) { c.Disabled = r }
}

// WithWidgets sets the cell's widgets. Widget indexes follow the given order.
func WithWidgets(ws ...*Widget) CellOption {
	return func(c *Cell) { c.Widgets = ws }
}

// WithFocus sets the function that moves DOM focus to the cell.
func WithFocus(fn func()) CellOption {
	return func(c *Cell) { c.focus = fn }
}

// NewCell creates an inactive 1x1 cell.
func NewCell(opts ...CellOption) *Cell {
	c := &Cell{RowSpan: 1, ColSpan: 1, Active: primitives.NewCell(false)}
	for _, opt := range opts {
		opt(c)
	}
	for i, w := range c.Widgets {
		w.Index = i
	}
	return c
}

// Focus moves DOM focus to the cell.
func (c *Cell) Focus() {
	if c.focus != nil {
		c.focus()
	}
}

// IsDisabled reads the cell's disabled flag.
func (c *Cell) IsDisabled() bool {
	return primitives.Get(c.Disabled)
}

// Covers reports whether the cell's rectangle contains rc.
func (c *Cell) Covers(rc RowCol) bool {
	return rc.Row >= c.RowIndex && rc.Row < c.RowIndex+c.RowSpan &&
		rc.Col >= c.ColIndex && rc.Col < c.ColIndex+c.ColSpan
}

// NavigationState is the grid's position: the active cell, the coordinate
// navigation is anchored at, and the active widget if any.
type NavigationState struct {
	Cell         *Cell
	CellIndex    RowCol
	Widget       *Widget
	WidgetIndex  int
	InWidgetMode bool
}

// Equal reports whether both states name the same position.
func (s NavigationState) Equal(o NavigationState) bool {
	return s.Cell == o.Cell &&
		s.Widget == o.Widget &&
		s.InWidgetMode == o.InWidgetMode &&
		s.WidgetIndex == o.WidgetIndex &&
		s.CellIndex == o.CellIndex
}
