package extensibility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/ariax/internal/primitives"
)

func TestChannelEventSource(t *testing.T) {
	ch := make(chan *primitives.Event, 1)
	s := NewChannelEventSource(ch)
	assert.Equal(t, (<-chan *primitives.Event)(ch), s.Events())

	ev := primitives.NewKeyEvent(primitives.KeyEnter)
	require.NoError(t, s.Send(context.Background(), ev))
	assert.Same(t, ev, <-s.Events())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch <- ev
	assert.ErrorIs(t, s.Send(ctx, ev), context.Canceled, "full channel with canceled context")
}

func TestPumpDrainsUntilClose(t *testing.T) {
	s := NewChannelEventSource(make(chan *primitives.Event, 3))
	keys := []string{primitives.KeyArrowDown, primitives.KeyArrowDown, primitives.KeyEnter}
	for _, k := range keys {
		require.NoError(t, s.Send(context.Background(), primitives.NewKeyEvent(k)))
	}
	s.Close()

	var got []string
	err := Pump(context.Background(), s, func(ev *primitives.Event) { got = append(got, ev.Key) })
	require.NoError(t, err)
	assert.Equal(t, keys, got)
}

func TestPumpStopsOnCancel(t *testing.T) {
	s := NewChannelEventSource(make(chan *primitives.Event))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := Pump(ctx, s, func(*primitives.Event) { t.Error("unexpected event") })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScriptEventSource(t *testing.T) {
	events := []*primitives.Event{
		primitives.NewKeyEvent(primitives.KeyArrowDown),
		primitives.NewKeyEvent(primitives.KeyEnter),
	}
	for _, d := range []time.Duration{0, 5 * time.Millisecond} {
		s := NewScriptEventSource(events, d)
		var got []*primitives.Event
		require.NoError(t, Pump(context.Background(), s, func(ev *primitives.Event) { got = append(got, ev) }))
		assert.Equal(t, events, got)
	}
}

func TestScriptEventSourceStop(t *testing.T) {
	s := NewScriptEventSource([]*primitives.Event{primitives.NewKeyEvent("a")}, time.Hour)
	s.Stop()
	_, open := <-s.Events()
	assert.False(t, open)
}
