package engine

import (
	"fmt"

	"github.com/viant/fsm/model"
)

// FromMachine compiles a machine definition into a runnable string-symbol
// engine. The definition is validated first, each transition's When clause
// is compiled into a predicate, and states are registered in definition
// order so that the first-match policy of the definition carries over.
func FromMachine(machine *model.Machine, options ...Option[string]) (*Engine[string], error) {
	if machine == nil {
		return nil, fmt.Errorf("machine was nil")
	}
	if err := machine.Validate(); err != nil {
		return nil, err
	}
	e := New[string](options...)
	if e.name == "" {
		e.name = machine.Name
	}
	if err := e.AddStates(machine.States...); err != nil {
		return nil, err
	}
	for _, transition := range machine.Transitions {
		predicate, err := transition.Predicate()
		if err != nil {
			return nil, fmt.Errorf("invalid transition %v->%v: %w", transition.From, transition.To, err)
		}
		if err := e.AddTransition(NewTransition[string](machine.State(transition.From), machine.State(transition.To), predicate)); err != nil {
			return nil, err
		}
	}
	return e, nil
}
