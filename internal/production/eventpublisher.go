package production

import (
	"context"

	"github.com/comalice/ariax/internal/core"
)

// ChannelPublisher forwards property changes to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- core.Change
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.Change) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, change core.Change) error {
	select {
	case p.ch <- change:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

// RecordingPublisher keeps every change in memory, newest last.
type RecordingPublisher struct {
	Changes []core.Change
}

func (p *RecordingPublisher) Publish(_ context.Context, change core.Change) error {
	p.Changes = append(p.Changes, change)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

// Latest returns the most recent change of property, if any.
func (p *RecordingPublisher) Latest(property string) (core.Change, bool) {
	for i := len(p.Changes) - 1; i >= 0; i-- {
		if p.Changes[i].Property == property {
			return p.Changes[i], true
		}
	}
	return core.Change{}, false
}
