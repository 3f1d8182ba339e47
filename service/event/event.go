// Package event publishes run lifecycle notifications through a messaging
// queue so observers can track machine execution asynchronously.
package event

import (
	"time"

	"github.com/viant/fsm/internal/clock"
)

// Type discriminates run lifecycle events.
type Type string

const (
	// TypeRunStarted is emitted once per run, before the first symbol is read.
	TypeRunStarted Type = "runStarted"
	// TypeSymbolAccepted is emitted after each successful transition.
	TypeSymbolAccepted Type = "symbolAccepted"
	// TypeRunCompleted is emitted when a run ends in a final state.
	TypeRunCompleted Type = "runCompleted"
	// TypeRunRejected is emitted when a run ends with an error.
	TypeRunRejected Type = "runRejected"
)

// Context identifies the run an event belongs to.
type Context struct {
	RunID   string `json:"runID"`
	Machine string `json:"machine,omitempty"`
	StateID string `json:"stateID,omitempty"`
	Type    Type   `json:"type"`
}

// Event carries one run notification with an arbitrary payload.
type Event[T any] struct {
	Context   *Context  `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data,omitempty"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Data:      data,
	}
}
