package event

import (
	"context"
	"fmt"

	"github.com/viant/fsm/internal/clock"
	"github.com/viant/fsm/service/messaging"
)

// Publisher pushes run events onto a queue.
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// NewPublisher creates a publisher backed by the supplied queue.
func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish enqueues an event, stamping CreatedAt when unset.
func (p *Publisher[T]) Publish(ctx context.Context, anEvent *Event[T]) error {
	if anEvent == nil {
		return fmt.Errorf("event was nil")
	}
	if anEvent.CreatedAt.IsZero() {
		anEvent.CreatedAt = clock.Now()
	}
	return p.queue.Publish(ctx, anEvent)
}

// TryPublish enqueues an event without blocking; it reports whether the
// event was accepted. CreatedAt is stamped when unset.
func (p *Publisher[T]) TryPublish(ctx context.Context, anEvent *Event[T]) (bool, error) {
	if anEvent == nil {
		return false, fmt.Errorf("event was nil")
	}
	if anEvent.CreatedAt.IsZero() {
		anEvent.CreatedAt = clock.Now()
	}
	return p.queue.TryPublish(ctx, anEvent)
}

// Consume pops the next event off the queue and acknowledges it.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	message, err := p.queue.Consume(ctx)
	if err != nil {
		return nil, err
	}
	anEvent := message.T()
	if err = message.Ack(); err != nil {
		return nil, err
	}
	return anEvent, nil
}
