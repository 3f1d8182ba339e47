// Package memory provides a channel backed in-process queue used as the
// default transport for run events.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/fsm/internal/idgen"
	"github.com/viant/fsm/service/messaging"
)

// Config controls queue capacity and redelivery behaviour.
type Config struct {
	// MaxRetries bounds how many times a nacked message is requeued.
	MaxRetries int
	// DeadLetter keeps messages that exhausted their retries.
	DeadLetter bool
	// QueueBuffer is the channel capacity.
	QueueBuffer int
}

// DefaultConfig returns the queue defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		DeadLetter:  true,
		QueueBuffer: 100,
	}
}

// Message is an in-memory queue item.
type Message[T any] struct {
	id      string
	payload *T
	queue   *Queue[T]
	retries int

	mu        sync.Mutex
	processed bool
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return m.payload
}

// Ack marks the message as processed.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	return nil
}

// Nack requeues the message until MaxRetries is reached, then moves it to the
// dead letter list when enabled.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true

	if m.retries < m.queue.config.MaxRetries {
		return m.queue.requeue(m)
	}
	if m.queue.config.DeadLetter {
		m.queue.deadLetter(m)
	}
	return nil
}

// Queue is an in-memory implementation of messaging.Queue.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config

	dlqMu sync.Mutex
	dlq   []*Message[T]
}

// NewQueue creates a queue with the supplied config.
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
	}
}

// Publish enqueues a message payload.
func (q *Queue[T]) Publish(ctx context.Context, payload *T) error {
	message := &Message[T]{
		id:      idgen.New(),
		payload: payload,
		queue:   q,
	}
	select {
	case q.messages <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPublish enqueues a message payload when buffer space is available and
// reports false otherwise.
func (q *Queue[T]) TryPublish(ctx context.Context, payload *T) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	message := &Message[T]{
		id:      idgen.New(),
		payload: payload,
		queue:   q,
	}
	select {
	case q.messages <- message:
		return true, nil
	default:
		return false, nil
	}
}

// Consume blocks until a message is available or the context is done.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case message := <-q.messages:
		return message, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the number of pending messages.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// DLQSize returns the number of dead lettered messages.
func (q *Queue[T]) DLQSize() int {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	return len(q.dlq)
}

func (q *Queue[T]) requeue(message *Message[T]) error {
	redelivery := &Message[T]{
		id:      message.id,
		payload: message.payload,
		queue:   q,
		retries: message.retries + 1,
	}
	select {
	case q.messages <- redelivery:
		return nil
	default:
		return fmt.Errorf("queue full, unable to requeue message %v", message.id)
	}
}

func (q *Queue[T]) deadLetter(message *Message[T]) {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	q.dlq = append(q.dlq, message)
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
