package grid

// landAt returns the default state for the cell covering idx. When no cell
// covers idx the current state is kept.
func landAt(g *Grid, st NavigationState, idx RowCol, anchor func(c *Cell) RowCol) NavigationState {
	c := GetCell(g, idx)
	if c == nil {
		return st
	}
	if anchor != nil {
		idx = anchor(c)
	}
	return DefaultStateAt(c, idx)
}

// CellRight moves past the right edge of the active cell on the anchored row.
func CellRight(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil {
		return st
	}
	idx := RowCol{st.CellIndex.Row, min(g.ColCount.Get()-1, st.Cell.ColIndex+st.Cell.ColSpan)}
	return landAt(g, st, idx, nil)
}

// CellLeft moves to the cell left of the active cell, anchored at that
// cell's first column.
func CellLeft(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil {
		return st
	}
	idx := RowCol{st.CellIndex.Row, max(0, st.Cell.ColIndex-1)}
	return landAt(g, st, idx, func(c *Cell) RowCol { return RowCol{idx.Row, c.ColIndex} })
}

// CellDown moves past the bottom edge of the active cell on the anchored column.
func CellDown(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil {
		return st
	}
	idx := RowCol{min(g.RowCount.Get()-1, st.Cell.RowIndex+st.Cell.RowSpan), st.CellIndex.Col}
	return landAt(g, st, idx, nil)
}

// CellUp moves to the cell above the active cell, anchored at that cell's
// first row.
func CellUp(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil {
		return st
	}
	idx := RowCol{max(0, st.Cell.RowIndex-1), st.CellIndex.Col}
	return landAt(g, st, idx, func(c *Cell) RowCol { return RowCol{c.RowIndex, idx.Col} })
}

// NextRowFirstCell moves to the first cell of the next row.
func NextRowFirstCell(g *Grid, st NavigationState) NavigationState {
	return landAt(g, st, RowCol{min(g.RowCount.Get()-1, st.CellIndex.Row+1), 0}, nil)
}

// PrevRowLastCell moves to the last cell of the previous row.
func PrevRowLastCell(g *Grid, st NavigationState) NavigationState {
	return landAt(g, st, RowCol{max(0, st.CellIndex.Row-1), g.ColCount.Get() - 1}, nil)
}

// NextColFirstCell moves to the top cell of the next column.
func NextColFirstCell(g *Grid, st NavigationState) NavigationState {
	return landAt(g, st, RowCol{0, min(g.ColCount.Get()-1, st.CellIndex.Col+1)}, nil)
}

// PrevColLastCell moves to the bottom cell of the previous column.
func PrevColLastCell(g *Grid, st NavigationState) NavigationState {
	return landAt(g, st, RowCol{g.RowCount.Get() - 1, max(0, st.CellIndex.Col-1)}, nil)
}

// WidgetRight activates the next widget of the active cell, wrapping to the
// first when the grid wraps.
func WidgetRight(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil || len(st.Cell.Widgets) == 0 {
		return st
	}
	i := st.WidgetIndex + 1
	if st.WidgetIndex == len(st.Cell.Widgets)-1 {
		i = st.WidgetIndex
		if g.Wrap() {
			i = 0
		}
	}
	return withWidget(st, i)
}

// WidgetLeft activates the previous widget of the active cell, wrapping to
// the last when the grid wraps.
func WidgetLeft(g *Grid, st NavigationState) NavigationState {
	if st.Cell == nil || len(st.Cell.Widgets) == 0 {
		return st
	}
	i := st.WidgetIndex - 1
	if st.WidgetIndex == 0 {
		i = 0
		if g.Wrap() {
			i = len(st.Cell.Widgets) - 1
		}
	}
	return withWidget(st, i)
}

func withWidget(st NavigationState, i int) NavigationState {
	i = max(0, min(len(st.Cell.Widgets)-1, i))
	st.Widget = st.Cell.Widgets[i]
	st.WidgetIndex = i
	st.InWidgetMode = true
	return st
}
