package grid

// AssignCoordinates sets RowIndex and ColIndex of every cell. A cell takes
// the first column of its row not already covered by a cell spanning down
// from an earlier row, then marks every slot it covers.
func AssignCoordinates(rows [][]*Cell) {
	taken := make(map[RowCol]bool)
	for r, row := range rows {
		col := 0
		for _, c := range row {
			for taken[RowCol{r, col}] {
				col++
			}
			c.RowIndex, c.ColIndex = r, col
			for dr := range c.RowSpan {
				for dc := range c.ColSpan {
					taken[RowCol{r + dr, col + dc}] = true
				}
			}
			col += c.ColSpan
		}
	}
}

// GetCell returns the cell covering rc, or nil.
func GetCell(g *Grid, rc RowCol) *Cell {
	for _, row := range g.Cells.Get() {
		for _, c := range row {
			if c.Covers(rc) {
				return c
			}
		}
	}
	return nil
}

// DefaultState is the state for landing on c at c's own coordinate.
func DefaultState(c *Cell) NavigationState {
	return DefaultStateAt(c, RowCol{c.RowIndex, c.ColIndex})
}

// DefaultStateAt is the state for landing on c with navigation anchored at
// idx. A cell whose only widget is a plain control focuses that widget
// directly; otherwise the cell itself is focused.
func DefaultStateAt(c *Cell, idx RowCol) NavigationState {
	st := NavigationState{Cell: c, CellIndex: idx}
	if len(c.Widgets) == 1 && !c.Widgets[0].Editable && !c.Widgets[0].UsesArrowKeys {
		st.Widget = c.Widgets[0]
	}
	return st
}
