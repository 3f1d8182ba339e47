package event

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Handler reacts to a single run event.
type Handler[T any] func(anEvent *Event[T])

// Listener consumes events in the background and dispatches them to a handler.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   Handler[T]
	cancel    context.CancelFunc
	done      sync.WaitGroup
}

// NewListener creates a listener for the supplied publisher.
func NewListener[T any](publisher *Publisher[T], handler Handler[T]) *Listener[T] {
	return &Listener[T]{publisher: publisher, handler: handler}
}

// Start begins consuming events until Stop is called or ctx is done.
func (l *Listener[T]) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.done.Add(1)
	go func() {
		defer l.done.Done()
		for {
			anEvent, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				log.Printf("failed to consume event: %v", err)
				continue
			}
			l.handler(anEvent)
		}
	}()
}

// Stop terminates consumption and waits for the dispatch loop to exit.
func (l *Listener[T]) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.done.Wait()
}
