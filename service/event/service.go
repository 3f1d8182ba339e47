package event

import (
	"context"

	"github.com/viant/fsm/service/messaging"
	"github.com/viant/fsm/service/messaging/memory"
)

// Service wires a queue, a publisher and an optional listener together.
type Service[T any] struct {
	queue       messaging.Queue[Event[T]]
	queueConfig *memory.Config
	publisher   *Publisher[T]
	listener    *Listener[T]
}

// Option customizes the event service.
type Option[T any] func(*Service[T])

// WithQueue overrides the default in-memory queue.
func WithQueue[T any](queue messaging.Queue[Event[T]]) Option[T] {
	return func(s *Service[T]) {
		s.queue = queue
	}
}

// WithQueueConfig tunes the default in-memory queue.
func WithQueueConfig[T any](config memory.Config) Option[T] {
	return func(s *Service[T]) {
		s.queueConfig = &config
	}
}

// New creates an event service backed by an in-memory queue unless overridden.
func New[T any](options ...Option[T]) *Service[T] {
	ret := &Service[T]{}
	for _, option := range options {
		option(ret)
	}
	if ret.queue == nil {
		config := memory.DefaultConfig()
		if ret.queueConfig != nil {
			config = *ret.queueConfig
		}
		ret.queue = memory.NewQueue[Event[T]](config)
	}
	ret.publisher = NewPublisher[T](ret.queue)
	return ret
}

// Publisher returns the event publisher.
func (s *Service[T]) Publisher() *Publisher[T] {
	return s.publisher
}

// Publish enqueues an event.
func (s *Service[T]) Publish(ctx context.Context, anEvent *Event[T]) error {
	return s.publisher.Publish(ctx, anEvent)
}

// TryPublish enqueues an event without blocking; an event that does not fit
// the queue is dropped and reported as not accepted.
func (s *Service[T]) TryPublish(ctx context.Context, anEvent *Event[T]) (bool, error) {
	return s.publisher.TryPublish(ctx, anEvent)
}

// SetListener replaces the background handler, stopping any previous one.
func (s *Service[T]) SetListener(ctx context.Context, handler Handler[T]) {
	if s.listener != nil {
		s.listener.Stop()
	}
	s.listener = NewListener[T](s.publisher, handler)
	s.listener.Start(ctx)
}

// Shutdown stops the background listener when one is running.
func (s *Service[T]) Shutdown() {
	if s.listener != nil {
		s.listener.Stop()
		s.listener = nil
	}
}
