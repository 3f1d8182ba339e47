package engine

import "fmt"

// Run errors raised by the engine while consuming symbols. Validation
// errors (start/final cardinality, unknown endpoints, duplicate states) are
// shared with the definition layer and live in the model package.

// NoMatchingTransitionError is returned when no transition from the current
// state accepts the current symbol. The symbol is rejected outright,
// independent of whether the current state is final.
type NoMatchingTransitionError struct {
	StateID  string
	Symbol   interface{}
	Accepted int // symbols accepted before the rejection
}

func (e *NoMatchingTransitionError) Error() string {
	return fmt.Sprintf("no matching transition from state %q for symbol %v (accepted %v symbols)", e.StateID, e.Symbol, e.Accepted)
}

// SymbolLimitError is returned when a run policy caps the number of symbols
// a run may read and the cap is exceeded.
type SymbolLimitError struct {
	Limit    int
	Accepted int
}

func (e *SymbolLimitError) Error() string {
	return fmt.Sprintf("symbol limit %v exceeded (accepted %v symbols)", e.Limit, e.Accepted)
}

// BlockedSymbolError is returned when a run policy blocks a symbol before
// transition matching.
type BlockedSymbolError struct {
	StateID  string
	Symbol   interface{}
	Accepted int
}

func (e *BlockedSymbolError) Error() string {
	return fmt.Sprintf("symbol %v blocked by run policy in state %q (accepted %v symbols)", e.Symbol, e.StateID, e.Accepted)
}

// NotAcceptedError is returned when the input is exhausted while the
// current state is not final.
type NotAcceptedError struct {
	StateID  string
	Accepted int // symbols accepted before the input ran out
}

func (e *NotAcceptedError) Error() string {
	return fmt.Sprintf("input exhausted in non-final state %q (accepted %v symbols)", e.StateID, e.Accepted)
}
