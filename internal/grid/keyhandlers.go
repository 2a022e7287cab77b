package grid

import (
	"unicode/utf8"

	"github.com/comalice/ariax/internal/primitives"
)

// OnKeyDown returns the state that follows pressing ev.Key in st.
func OnKeyDown(g *Grid, st NavigationState, ev *primitives.Event) NavigationState {
	switch ev.Key {
	case primitives.KeyEnter:
		return OnEnter(st)
	case primitives.KeyEscape:
		return OnEscape(st)
	case primitives.KeyArrowUp:
		return OnArrowUp(g, st)
	case primitives.KeyArrowDown:
		return OnArrowDown(g, st)
	case primitives.KeyArrowLeft:
		return OnArrowLeft(g, st)
	case primitives.KeyArrowRight:
		return OnArrowRight(g, st)
	default:
		return OnAlphanumeric(st, ev.Key)
	}
}

// OnAlphanumeric enters widget mode when a character is typed on a cell
// whose single widget is editable.
func OnAlphanumeric(st NavigationState, key string) NavigationState {
	if st.InWidgetMode || st.Cell == nil || !isAlphanumeric(key) {
		return st
	}
	if len(st.Cell.Widgets) == 1 && st.Cell.Widgets[0].Editable {
		return withWidget(st, 0)
	}
	return st
}

func isAlphanumeric(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r := key[0]
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// OnEnter enters widget mode when the cell's widgets need the navigation
// keys: several widgets, or one that is editable or uses arrow keys.
func OnEnter(st NavigationState) NavigationState {
	c := st.Cell
	if c == nil || st.InWidgetMode || c.IsDisabled() || len(c.Widgets) == 0 {
		return st
	}
	w := c.Widgets[0]
	if len(c.Widgets) > 1 || w.Editable || w.UsesArrowKeys {
		return withWidget(st, 0)
	}
	return st
}

// OnEscape leaves widget mode.
func OnEscape(st NavigationState) NavigationState {
	if !st.InWidgetMode {
		return st
	}
	st.InWidgetMode = false
	st.Widget = nil
	return st
}

// OnArrowRight moves right, continuing on the next row when wrapping.
func OnArrowRight(g *Grid, st NavigationState) NavigationState {
	if st.InWidgetMode {
		return WidgetRight(g, st)
	}
	next := CellRight(g, st)
	lastRow := next.CellIndex.Row+1 > g.RowCount.Get()-1
	if g.Wrap() && next.Cell == st.Cell && !lastRow {
		next = NextRowFirstCell(g, st)
	}
	return next
}

// OnArrowLeft moves left, continuing on the previous row when wrapping.
func OnArrowLeft(g *Grid, st NavigationState) NavigationState {
	if st.InWidgetMode {
		return WidgetLeft(g, st)
	}
	next := CellLeft(g, st)
	firstRow := next.CellIndex.Row == 0
	if g.Wrap() && next.Cell == st.Cell && !firstRow {
		next = PrevRowLastCell(g, st)
	}
	return next
}

// OnArrowDown moves down, continuing in the next column when wrapping.
func OnArrowDown(g *Grid, st NavigationState) NavigationState {
	if st.InWidgetMode {
		return WidgetRight(g, st)
	}
	next := CellDown(g, st)
	last := next.Cell != nil && next.Cell.Covers(RowCol{g.RowCount.Get() - 1, g.ColCount.Get() - 1})
	if g.Wrap() && next.Cell == st.Cell && !last {
		next = NextColFirstCell(g, st)
	}
	return next
}

// OnArrowUp moves up, continuing in the previous column when wrapping.
func OnArrowUp(g *Grid, st NavigationState) NavigationState {
	if st.InWidgetMode {
		return WidgetLeft(g, st)
	}
	next := CellUp(g, st)
	first := next.Cell != nil && next.Cell.Covers(RowCol{0, 0})
	if g.Wrap() && next.Cell == st.Cell && !first {
		next = PrevColLastCell(g, st)
	}
	return next
}
