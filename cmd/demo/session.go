package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/ariax/internal/config"
	"github.com/comalice/ariax/internal/extensibility"
	"github.com/comalice/ariax/internal/primitives"
	"github.com/comalice/ariax/internal/production"
)

var errNothingToRun = errors.New("no key source")

// session holds what every subcommand needs: the loaded configuration, a
// logger and somewhere to draw.
type session struct {
	file        *config.File
	logger      *slog.Logger
	out         io.Writer
	interactive bool
	dump        string
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	interactive, _ := cmd.Flags().GetBool("interactive")
	dump, _ := cmd.Flags().GetString("dump")
	if dump != "" {
		if _, err := production.ParseFormat(dump); err != nil {
			return nil, err
		}
	}

	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &session{
		file:        f,
		logger:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		out:         cmd.OutOrStdout(),
		interactive: interactive,
		dump:        dump,
	}, nil
}

// run feeds events from the configured source to handle, drawing frame
// before the first event and after each one.
func (s *session) run(cmd *cobra.Command, handle func(*primitives.Event), frame func() string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, closeSrc, err := s.source(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeSrc()

	s.draw(frame())
	err = extensibility.Pump(ctx, src, func(ev *primitives.Event) {
		handle(ev)
		s.logger.Debug("key", "key", ev.Key, "ctrl", ev.Ctrl, "handled", ev.DefaultPrevented())
		s.draw(frame())
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *session) source(ctx context.Context, cmd *cobra.Command) (extensibility.EventSource, func(), error) {
	if s.interactive {
		return readTerminal(ctx, os.Stdin)
	}
	script, _ := cmd.Flags().GetString("keys")
	delay, _ := cmd.Flags().GetDuration("delay")
	events, err := ParseKeys(script)
	if err != nil {
		return nil, nil, err
	}
	if len(events) == 0 && s.dump == "" {
		return nil, nil, fmt.Errorf("%w: pass --keys, --interactive or --dump", errNothingToRun)
	}
	src := extensibility.NewScriptEventSource(events, delay)
	return src, src.Stop, nil
}

func (s *session) draw(frame string) {
	if s.interactive {
		// raw mode needs explicit carriage returns
		fmt.Fprint(s.out, "\033[H\033[2J"+strings.ReplaceAll(frame, "\n", "\r\n")+"\r\n")
		return
	}
	fmt.Fprintln(s.out, frame)
}

func (s *session) writeSnapshot(snap production.Snapshot) error {
	if s.dump == "" {
		return nil
	}
	f, err := production.ParseFormat(s.dump)
	if err != nil {
		return err
	}
	return production.Encode(s.out, f, snap)
}
