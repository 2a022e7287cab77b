package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comalice/ariax"
	"github.com/comalice/ariax/internal/primitives"
	"github.com/comalice/ariax/internal/production"
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Run the grid section of the configuration",
	Long: `Builds a grid from the configuration's grid section and applies every key.
Enter and typing on an editable widget enter widget mode; Escape leaves it.`,
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	cfg := s.file.Grid
	if cfg == nil {
		return fmt.Errorf("%s: no grid section", cmd.Flag("config").Value)
	}

	rows := cfg.BuildRows(func(label string) func() {
		return func() { s.logger.Debug("focus", "target", label) }
	})
	g := ariax.NewGrid(rows, ariax.WithGridWrap(cfg.Wrap), ariax.WithGridLogger(s.logger))
	defer g.Close()

	err = s.run(cmd, func(ev *primitives.Event) {
		if ev.Alt {
			return
		}
		g.Dispatch(ev)
	}, func() string { return renderGrid(g) })
	if err != nil {
		return err
	}
	return s.writeSnapshot(gridSnapshot(g))
}

func gridSnapshot(g *ariax.Grid) production.Snapshot {
	nav := g.Navigation()
	props := map[string]any{
		"rowCount":     g.RowCount(),
		"colCount":     g.ColCount(),
		"row":          nav.CellIndex.Row,
		"col":          nav.CellIndex.Col,
		"inWidgetMode": nav.InWidgetMode,
		"cell":         nil,
		"widget":       nil,
	}
	if nav.Cell != nil {
		props["cell"] = nav.Cell.Label
	}
	if nav.Widget != nil {
		props["widget"] = nav.Widget.Label
	}
	return production.Snapshot{
		Machine:    "grid",
		Timestamp:  time.Now().UTC(),
		Properties: props,
	}
}
