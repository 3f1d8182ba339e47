// Package messaging defines the queue contract used to deliver run events to
// asynchronous consumers.
package messaging

import "context"

// Queue provides message delivery with acknowledgement semantics.
type Queue[T any] interface {
	// Publish enqueues a message payload, blocking while the queue is full.
	Publish(ctx context.Context, message *T) error

	// TryPublish enqueues a message payload without blocking; it reports
	// whether the message was accepted.
	TryPublish(ctx context.Context, message *T) (bool, error)

	// Consume blocks until a message is available or the context is done.
	Consume(ctx context.Context) (Message[T], error)
}

// Message is a single consumed item, acknowledged once handled.
type Message[T any] interface {
	// T returns the message payload.
	T() *T

	// Ack marks the message as successfully processed.
	Ack() error

	// Nack signals a processing failure so the queue may redeliver.
	Nack(err error) error
}
