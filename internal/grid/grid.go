package grid

import (
	"log/slog"

	"github.com/comalice/ariax/internal/primitives"
)

// Grid derives coordinates and counts from its rows and holds the
// navigation state.
type Grid struct {
	Cells    *primitives.Computed[[][]*Cell]
	RowCount *primitives.Computed[int]
	ColCount *primitives.Computed[int]
	State    *primitives.Cell[NavigationState]

	wrap   primitives.Readable[bool]
	logger *slog.Logger
}

type options struct {
	wrap   primitives.Readable[bool]
	logger *slog.Logger
}

// Option configures a Grid.
type Option func(*options)

// WithWrap makes edge navigation continue on the next row or column while r
// reports true.
func WithWrap(r primitives.Readable[bool]) Option {
	return func(o *options) { o.wrap = r }
}

// WithLogger sets the logger for mode transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a grid over rows. Coordinates are reassigned whenever rows
// changes.
func New(rows primitives.Readable[[][]*Cell], opts ...Option) *Grid {
	o := options{
		wrap:   primitives.Const(false),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{
		State:  primitives.NewCell(NavigationState{}, primitives.WithEqual(NavigationState.Equal)),
		wrap:   o.wrap,
		logger: o.logger,
	}
	g.Cells = primitives.NewComputed(func() [][]*Cell {
		cells := rows.Get()
		AssignCoordinates(cells)
		for _, row := range cells {
			for _, c := range row {
				g.bindTabindex(c)
			}
		}
		return cells
	})
	g.RowCount = primitives.NewComputed(func() int { return len(g.Cells.Get()) })
	g.ColCount = primitives.NewComputed(func() int {
		cells := g.Cells.Get()
		if len(cells) == 0 {
			return 0
		}
		n := 0
		for _, c := range cells[0] {
			n += c.ColSpan
		}
		return n
	})
	return g
}

func (g *Grid) bindTabindex(c *Cell) {
	if c.Tabindex != nil {
		return
	}
	c.Tabindex = primitives.NewComputed(func() int {
		if c.Active.Get() && g.State.Get().Widget == nil {
			return 0
		}
		return -1
	})
}

// Wrap reports whether edge navigation wraps.
func (g *Grid) Wrap() bool {
	return g.wrap.Get()
}

// Flat returns the cells in row order.
func (g *Grid) Flat() []*Cell {
	var out []*Cell
	for _, row := range g.Cells.Get() {
		out = append(out, row...)
	}
	return out
}

// Watch keeps the navigation state in step with the row structure. The
// returned function stops watching.
func (g *Grid) Watch() (stop func()) {
	e := primitives.NewEffect(func() {
		g.Cells.Get()
		primitives.Untracked(func() struct{} {
			Sync(g)
			return struct{}{}
		})
	})
	return e.Stop
}
