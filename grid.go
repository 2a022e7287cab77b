package ariax

import (
	"log/slog"

	"github.com/comalice/ariax/internal/grid"
	"github.com/comalice/ariax/internal/primitives"
)

type (
	GridCell        = grid.Cell
	GridWidget      = grid.Widget
	NavigationState = grid.NavigationState
)

type gridConfig struct {
	wrap   bool
	logger *slog.Logger
}

// GridOption configures NewGrid.
type GridOption func(*gridConfig)

// WithGridWrap makes navigation past an edge continue on the next row or
// column.
func WithGridWrap(wrap bool) GridOption {
	return func(c *gridConfig) { c.wrap = wrap }
}

// WithGridLogger sets the logger for grid mode transitions.
func WithGridLogger(logger *slog.Logger) GridOption {
	return func(c *gridConfig) { c.logger = logger }
}

// Grid is a two-dimensional navigation engine over rows of cells, with an
// optional widget mode inside cells.
type Grid struct {
	rows   *primitives.Cell[[][]*grid.Cell]
	wrap   *primitives.Cell[bool]
	engine *grid.Grid
	stop   func()
}

// NewGrid builds a grid over rows. The first cell in reading order starts
// active unless another cell is already marked active.
func NewGrid(rows [][]*grid.Cell, opts ...GridOption) *Grid {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Grid{
		rows: primitives.NewCell(rows),
		wrap: primitives.NewCell(cfg.wrap),
	}
	gopts := []grid.Option{grid.WithWrap(g.wrap)}
	if cfg.logger != nil {
		gopts = append(gopts, grid.WithLogger(cfg.logger))
	}
	g.engine = grid.New(g.rows, gopts...)
	g.stop = g.engine.Watch()
	return g
}

// KeyDown applies key and reports whether the navigation state changed.
// The newly active cell or widget is focused.
func (g *Grid) KeyDown(key string) bool {
	return g.Dispatch(primitives.NewKeyEvent(key))
}

// Dispatch applies a keydown event, preventing its default action when it
// moved the navigation state.
func (g *Grid) Dispatch(ev *Event) bool {
	if ev.Type != primitives.KeyDown {
		return false
	}
	return grid.HandleKeyDown(g.engine, ev)
}

// Navigation returns the current navigation state.
func (g *Grid) Navigation() NavigationState { return g.engine.State.Get() }

func (g *Grid) RowCount() int { return g.engine.RowCount.Get() }

func (g *Grid) ColCount() int { return g.engine.ColCount.Get() }

// Rows returns the cells with their assigned coordinates.
func (g *Grid) Rows() [][]*grid.Cell { return g.engine.Cells.Get() }

// SetRows replaces the structure. Navigation resets to the active cell when
// it is still present.
func (g *Grid) SetRows(rows [][]*grid.Cell) { g.rows.Set(rows) }

// SetWrap turns edge wrapping on or off.
func (g *Grid) SetWrap(wrap bool) { g.wrap.Set(wrap) }

// Engine exposes the underlying navigation engine.
func (g *Grid) Engine() *grid.Grid { return g.engine }

// Close stops following structural changes.
func (g *Grid) Close() {
	if g.stop != nil {
		g.stop()
		g.stop = nil
	}
}
