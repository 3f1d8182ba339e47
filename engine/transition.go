package engine

import "github.com/viant/fsm/model"

// Predicate reports whether a transition accepts the supplied symbol. It
// must be total over the symbol domain and free of side effects visible to
// the engine.
type Predicate[S any] func(symbol S) bool

// Transition pairs two states with a symbol predicate. Endpoints are
// matched against registered states by id at validation time, so a
// transition may be created before its states are registered.
type Transition[S any] struct {
	Source    *model.State
	Target    *model.State
	Predicate Predicate[S]
}

// NewTransition creates a transition between the supplied states
func NewTransition[S any](source, target *model.State, predicate Predicate[S]) *Transition[S] {
	return &Transition[S]{Source: source, Target: target, Predicate: predicate}
}
