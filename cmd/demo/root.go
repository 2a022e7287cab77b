package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive an ariax listbox or grid from the terminal",
	Long: `demo loads a widget from a YAML configuration file and feeds it key
events from a script (--keys) or from the terminal (--interactive), rendering
the widget after every event.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML widget configuration")
	rootCmd.PersistentFlags().StringP("keys", "k", "", `key script, e.g. "down,down,enter" or "ctrl+a end"`)
	rootCmd.PersistentFlags().Duration("delay", 0, "pause between scripted keys")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "read keys from the terminal; ctrl+c quits")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log engine activity to stderr")
	rootCmd.PersistentFlags().String("dump", "", "print a snapshot after the run: yaml or json")
	_ = rootCmd.MarkPersistentFlagRequired("config")
}
