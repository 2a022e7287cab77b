package ariax_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/ariax"
	"github.com/comalice/ariax/internal/grid"
	"github.com/comalice/ariax/internal/primitives"
)

func cells(rows, cols int, focused *[]string) [][]*grid.Cell {
	out := make([][]*grid.Cell, rows)
	for r := range rows {
		for c := range cols {
			label := fmt.Sprintf("%d,%d", r, c)
			out[r] = append(out[r], grid.NewCell(
				grid.WithLabel(label),
				grid.WithFocus(func() { *focused = append(*focused, label) }),
			))
		}
	}
	return out
}

func label(g *ariax.Grid) string {
	if c := g.Navigation().Cell; c != nil {
		return c.Label
	}
	return ""
}

func TestGridNavigation(t *testing.T) {
	var focused []string
	g := ariax.NewGrid(cells(2, 3, &focused))
	defer g.Close()

	assert.Equal(t, 2, g.RowCount())
	assert.Equal(t, 3, g.ColCount())
	assert.Equal(t, "0,0", label(g))

	assert.True(t, g.KeyDown(primitives.KeyArrowRight))
	assert.True(t, g.KeyDown(primitives.KeyArrowDown))
	assert.Equal(t, "1,1", label(g))
	assert.Equal(t, []string{"0,1", "1,1"}, focused)

	assert.False(t, g.KeyDown(primitives.KeyArrowDown), "bottom edge without wrap")
	assert.False(t, g.Dispatch(primitives.NewFocusEvent(primitives.FocusIn, nil)))
}

func TestGridWrap(t *testing.T) {
	var focused []string
	g := ariax.NewGrid(cells(2, 2, &focused), ariax.WithGridWrap(true))
	defer g.Close()

	g.KeyDown(primitives.KeyArrowRight)
	require.True(t, g.KeyDown(primitives.KeyArrowRight))
	assert.Equal(t, "1,0", label(g))

	g.SetWrap(false)
	g.KeyDown(primitives.KeyArrowRight)
	assert.False(t, g.KeyDown(primitives.KeyArrowRight))
	assert.Equal(t, "1,1", label(g))
}

func TestGridSetRows(t *testing.T) {
	var focused []string
	g := ariax.NewGrid(cells(2, 2, &focused))
	defer g.Close()

	g.SetRows(cells(3, 4, &focused))
	assert.Equal(t, 3, g.RowCount())
	assert.Equal(t, 4, g.ColCount())
	assert.Equal(t, "0,0", label(g))
	assert.Len(t, g.Rows(), 3)

	g.SetRows(nil)
	assert.Nil(t, g.Navigation().Cell)
	assert.False(t, g.KeyDown(primitives.KeyArrowRight))
}

func TestGridWidgetMode(t *testing.T) {
	var focused []string
	input := grid.NewWidget(grid.Editable(), grid.WithWidgetLabel("input"),
		grid.WithWidgetFocus(func() { focused = append(focused, "input") }))
	rows := [][]*grid.Cell{{
		grid.NewCell(grid.WithLabel("a")),
		grid.NewCell(grid.WithLabel("b"), grid.WithWidgets(input)),
	}}
	g := ariax.NewGrid(rows)
	defer g.Close()

	g.KeyDown(primitives.KeyArrowRight)
	require.Equal(t, "b", label(g))
	assert.True(t, g.KeyDown(primitives.KeyEnter))
	nav := g.Navigation()
	assert.True(t, nav.InWidgetMode)
	assert.Same(t, input, nav.Widget)
	assert.Contains(t, focused, "input")

	assert.True(t, g.KeyDown(primitives.KeyEscape))
	assert.False(t, g.Navigation().InWidgetMode)
}
