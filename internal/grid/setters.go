package grid

import (
	"github.com/comalice/ariax/internal/primitives"
)

// UpdateState moves the active flags from the current state to next, stores
// next and, when focus is set, focuses the active widget or else the cell.
func UpdateState(g *Grid, next NavigationState, focus bool) {
	old := primitives.Untracked(g.State.Get)
	primitives.Batch(func() {
		if old.Cell != nil && old.Cell != next.Cell {
			old.Cell.Active.Set(false)
		}
		if next.Cell != nil {
			next.Cell.Active.Set(true)
		}
		if old.Widget != nil && old.Widget != next.Widget {
			old.Widget.Active.Set(false)
		}
		if next.Widget != nil {
			next.Widget.Active.Set(true)
		}
		g.State.Set(next)
	})
	if old.InWidgetMode != next.InWidgetMode {
		g.logger.Debug("grid mode changed", "widgetMode", next.InWidgetMode, "row", next.CellIndex.Row, "col", next.CellIndex.Col)
	}
	if !focus {
		return
	}
	switch {
	case next.Widget != nil:
		next.Widget.Focus()
	case next.Cell != nil:
		next.Cell.Focus()
	}
}

// Sync resets the state to the default state of the active cell, or of the
// first cell when none is active. Flags left on the previous cell or widget
// are cleared.
func Sync(g *Grid) {
	cells := g.Flat()
	if len(cells) == 0 {
		UpdateState(g, NavigationState{}, false)
		return
	}
	c := cells[0]
	for _, cell := range cells {
		if cell.Active.Get() {
			c = cell
			break
		}
	}
	UpdateState(g, DefaultState(c), false)
}

// HandleKeyDown applies ev to the grid and focuses the result. It reports
// whether the state changed, and prevents the event's default action when
// it did.
func HandleKeyDown(g *Grid, ev *primitives.Event) bool {
	old := primitives.Untracked(g.State.Get)
	next := OnKeyDown(g, old, ev)
	if next.Equal(old) {
		return false
	}
	UpdateState(g, next, true)
	ev.PreventDefault()
	return true
}
