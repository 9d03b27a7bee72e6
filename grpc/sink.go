package grpc

import (
	"context"

	"pingly/domain/event"
)

// Sink bridges the server-side bus to one subscriber stream.
type Sink struct {
	Events chan event.DomainEvent
}

func NewGrpcSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume is called by the bus fanout. It hands the event to the
// stream goroutine that owns the channel.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Channel full: the subscriber is too slow, drop rather than
		// stall delivery to everyone else. The client recovers on
		// reconnect with a bulk fetch.
		return nil
	}
}
