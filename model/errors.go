package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors raised when a machine definition is assembled or
// validated. Each misconfiguration surfaces as a distinct kind so that
// callers can discriminate with errors.Is / errors.As.

var (
	// ErrNoStartState is returned when no state is marked as start
	ErrNoStartState = errors.New("machine has no start state")

	// ErrNoFinalState is returned when no state is marked as final
	ErrNoFinalState = errors.New("machine has no final state")
)

// DuplicateStateError is returned when a state id is registered twice
type DuplicateStateError struct {
	ID string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("duplicate state %q", e.ID)
}

// MultipleStartStatesError is returned when more than one state is marked
// as start
type MultipleStartStatesError struct {
	IDs []string
}

func (e *MultipleStartStatesError) Error() string {
	return fmt.Sprintf("multiple start states: %v", strings.Join(e.IDs, ", "))
}

// UnknownStateError is returned when a transition endpoint references a
// state id absent from the machine state set
type UnknownStateError struct {
	StateID string
	Side    string // source or target
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("transition %v references unknown state %q", e.Side, e.StateID)
}
