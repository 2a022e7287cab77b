package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/comalice/ariax/internal/extensibility"
	"github.com/comalice/ariax/internal/primitives"
)

var errNotTerminal = errors.New("--interactive needs a terminal on stdin")

// readTerminal puts in into raw mode and decodes its input into keydown
// events until ctrl+c, ctrl+d or end of input. The returned function
// restores the terminal.
func readTerminal(ctx context.Context, in *os.File) (extensibility.EventSource, func(), error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil, errNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	src := extensibility.NewChannelEventSource(make(chan *primitives.Event, 16))
	go func() {
		defer src.Close()
		b := make([]byte, 8)
		for {
			n, err := in.Read(b)
			if err != nil {
				return
			}
			ev, quit := decodeInput(b[:n])
			if quit {
				return
			}
			if ev == nil {
				continue
			}
			if err := src.Send(ctx, ev); err != nil {
				return
			}
		}
	}()
	return src, func() { _ = term.Restore(fd, oldState) }, nil
}
