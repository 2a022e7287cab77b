package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/ariax"
	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/extensibility"
	"github.com/comalice/ariax/internal/primitives"
	"github.com/comalice/ariax/internal/production"
	"github.com/comalice/ariax/testutil"
)

// listboxCmd represents the listbox command
var listboxCmd = &cobra.Command{
	Use:   "listbox",
	Short: "Run the listbox section of the configuration",
	Long: `Builds a listbox from the configuration's listbox section, focuses it and
applies every key. With --dot the composed behaviors are printed as a
Graphviz digraph after the run.`,
	RunE: runListbox,
}

func init() {
	listboxCmd.Flags().String("guard", "", `drop events unless the expression holds, e.g. "disabled == false"`)
	listboxCmd.Flags().Bool("dot", false, "print the composed behaviors as DOT after the run")
	rootCmd.AddCommand(listboxCmd)
}

func runListbox(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	cfg := s.file.Listbox
	if cfg == nil {
		return fmt.Errorf("%s: no listbox section", cmd.Flag("config").Value)
	}

	doc := testutil.NewDocument()
	list := doc.NewElement("listbox", nil)
	items, selected := cfg.BuildItems(func(_ int, label string) primitives.Element {
		return doc.NewElement(label, list)
	})

	changes := make(chan core.Change, 256)
	opts := []ariax.ListboxOption{
		ariax.WithOptions(cfg.Options),
		ariax.WithSelected(selected...),
		ariax.WithDisabled(cfg.Disabled),
		ariax.WithLogger(s.logger),
		ariax.WithPublisher(production.NewChannelPublisher(changes)),
		ariax.WithVisualizer(&production.DefaultVisualizer{}),
		ariax.WithMiddleware(
			extensibility.GuardMiddleware(extensibility.IgnoreAltKeys),
			extensibility.LoggingMiddleware(s.logger),
		),
	}
	if expr, _ := cmd.Flags().GetString("guard"); expr != "" {
		g, err := extensibility.ExpressionGuard(expr)
		if err != nil {
			return err
		}
		opts = append(opts, ariax.WithMiddleware(extensibility.GuardMiddleware(g)))
	}

	lb, err := ariax.NewListbox(list, doc, items, opts...)
	if err != nil {
		return err
	}
	defer lb.Close()
	stop := lb.OnFocusRequest(func(el ariax.Element) { el.Focus() })
	defer stop()
	lb.FocusIn(list)

	drain := func() {
		for {
			select {
			case c := <-changes:
				s.logger.Debug("property changed", "property", c.Property, "value", production.Normalize(c.Value))
			default:
				return
			}
		}
	}
	drain()
	err = s.run(cmd, func(ev *primitives.Event) {
		lb.Dispatch(ev)
		drain()
	}, func() string { return renderListbox(lb) })
	if err != nil {
		return err
	}

	if err := s.writeSnapshot(lb.Snapshot()); err != nil {
		return err
	}
	if dot, _ := cmd.Flags().GetBool("dot"); dot {
		fmt.Fprint(s.out, lb.Visualize())
	}
	return nil
}
