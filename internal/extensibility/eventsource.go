package extensibility

import (
	"context"
	"time"

	"github.com/comalice/ariax/internal/primitives"
)

// EventSource delivers events produced outside the event loop, such as
// terminal input.
type EventSource interface {
	Events() <-chan *primitives.Event
}

// ChannelEventSource is an EventSource implementation backed by a Go channel.
type ChannelEventSource struct {
	ch chan *primitives.Event
}

// NewChannelEventSource creates a new ChannelEventSource with the given channel.
// The channel should be buffered if the producer must not block.
func NewChannelEventSource(ch chan *primitives.Event) *ChannelEventSource {
	return &ChannelEventSource{ch: ch}
}

// Events returns the receive-only channel for events.
func (s *ChannelEventSource) Events() <-chan *primitives.Event {
	return s.ch
}

// Send queues ev, blocking until there is room or ctx ends.
func (s *ChannelEventSource) Send(ctx context.Context, ev *primitives.Event) error {
	select {
	case s.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close signals that no more events will be sent.
func (s *ChannelEventSource) Close() {
	close(s.ch)
}

// ScriptEventSource replays a fixed list of events, one per tick, then
// closes its channel.
type ScriptEventSource struct {
	ch     chan *primitives.Event
	events []*primitives.Event
	ticker *time.Ticker
	stop   chan struct{}
}

// NewScriptEventSource starts replaying events every d. A zero d replays
// without delay.
func NewScriptEventSource(events []*primitives.Event, d time.Duration) *ScriptEventSource {
	s := &ScriptEventSource{
		ch:     make(chan *primitives.Event),
		events: events,
		stop:   make(chan struct{}),
	}
	if d > 0 {
		s.ticker = time.NewTicker(d)
	}
	go s.run()
	return s
}

func (s *ScriptEventSource) run() {
	defer close(s.ch)
	if s.ticker != nil {
		defer s.ticker.Stop()
	}
	for _, ev := range s.events {
		if s.ticker != nil {
			select {
			case <-s.ticker.C:
			case <-s.stop:
				return
			}
		}
		select {
		case s.ch <- ev:
		case <-s.stop:
			return
		}
	}
}

// Events returns the event channel.
func (s *ScriptEventSource) Events() <-chan *primitives.Event {
	return s.ch
}

// Stop ends the replay and closes the channel.
func (s *ScriptEventSource) Stop() {
	close(s.stop)
}

// Pump hands every event from src to handle on the calling goroutine. It
// returns nil once src closes and ctx's error if ctx ends first.
func Pump(ctx context.Context, src EventSource, handle func(*primitives.Event)) error {
	events := src.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			handle(ev)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
