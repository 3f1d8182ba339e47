package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/viant/fsm/internal/idgen"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/policy"
	"github.com/viant/fsm/progress"
	"github.com/viant/fsm/source"
	"github.com/viant/fsm/tracing"
	"github.com/viant/toolbox"
)

// Engine executes a deterministic finite-state machine over symbols pulled
// from a caller-supplied source. States and transitions are registered
// before the first run; full consistency validation is deferred to a single
// Validate step invoked automatically at the start of Run, so states and
// the transitions that reference them may be registered in any order.
type Engine[S any] struct {
	name        string
	runID       string
	states      map[string]*model.State
	order       []string
	transitions []*Transition[S]
	pre         Hook[S]
	post        Hook[S]
	start       *model.State
	current     *model.State
}

// New creates an engine
func New[S any](options ...Option[S]) *Engine[S] {
	e := &Engine[S]{states: make(map[string]*model.State)}
	for _, option := range options {
		option(e)
	}
	return e
}

// Name returns the machine name
func (e *Engine[S]) Name() string {
	return e.name
}

// Current returns the state the engine is in, or nil before the first
// symbol of the first run has been processed
func (e *Engine[S]) Current() *model.State {
	return e.current
}

// AddState registers a state. A state whose id is already registered is
// rejected with DuplicateStateError.
func (e *Engine[S]) AddState(state *model.State) error {
	if state == nil {
		return fmt.Errorf("state was nil")
	}
	if _, ok := e.states[state.ID]; ok {
		return &model.DuplicateStateError{ID: state.ID}
	}
	e.states[state.ID] = state
	e.order = append(e.order, state.ID)
	return nil
}

// AddStates registers a set of states
func (e *Engine[S]) AddStates(states ...*model.State) error {
	for _, state := range states {
		if err := e.AddState(state); err != nil {
			return err
		}
	}
	return nil
}

// AddTransition appends a transition to the ordered transition sequence.
// The insertion order is semantically significant: the run loop takes the
// earliest registered transition that matches. Endpoint resolution against
// the registered states is deferred to Validate.
func (e *Engine[S]) AddTransition(transition *Transition[S]) error {
	if transition == nil {
		return fmt.Errorf("transition was nil")
	}
	if transition.Source == nil || transition.Target == nil {
		return fmt.Errorf("transition endpoint was nil")
	}
	if transition.Predicate == nil {
		return fmt.Errorf("transition %v->%v had no predicate", transition.Source.ID, transition.Target.ID)
	}
	e.transitions = append(e.transitions, transition)
	return nil
}

// AddTransitions appends a set of transitions
func (e *Engine[S]) AddTransitions(transitions ...*Transition[S]) error {
	for _, transition := range transitions {
		if err := e.AddTransition(transition); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the machine for structural consistency: exactly one
// start state, at least one final state, and every transition endpoint
// resolving to a registered state. Checks run in that order, each failing
// fast with a distinct error kind. Validate is idempotent and is invoked
// automatically at the beginning of Run.
func (e *Engine[S]) Validate() error {
	var starts []string
	hasFinal := false
	for _, id := range e.order {
		state := e.states[id]
		if state.Start {
			starts = append(starts, id)
		}
		if state.Final {
			hasFinal = true
		}
	}
	if len(starts) == 0 {
		return model.ErrNoStartState
	}
	if len(starts) > 1 {
		return &model.MultipleStartStatesError{IDs: starts}
	}
	if !hasFinal {
		return model.ErrNoFinalState
	}
	for _, transition := range e.transitions {
		if _, ok := e.states[transition.Source.ID]; !ok {
			return &model.UnknownStateError{StateID: transition.Source.ID, Side: "source"}
		}
		if _, ok := e.states[transition.Target.ID]; !ok {
			return &model.UnknownStateError{StateID: transition.Target.ID, Side: "target"}
		}
	}
	e.start = e.states[starts[0]]
	return nil
}

// Run executes the machine to completion over the supplied symbol source
// and returns the ordered sequence of accepted symbols. The accepted
// prefix is returned even when the run fails, so that rejections can be
// diagnosed. End-of-input (io.EOF from the source) is not an error: it
// triggers the acceptance decision – success when the current state is
// final, NotAcceptedError otherwise. A symbol no transition accepts aborts
// the run with NoMatchingTransitionError.
//
// Run resets the engine's per-run state on entry, so an engine may be
// reused for sequential runs. When the context carries a policy.Policy its
// symbol limits apply before transition matching.
func (e *Engine[S]) Run(ctx context.Context, src source.Source[S]) ([]S, error) {
	if src == nil {
		return nil, fmt.Errorf("symbol source was nil")
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	runID := e.runID
	if runID == "" {
		runID = idgen.New()
	}
	ctx, span := tracing.StartSpan(ctx, "fsm.run", "INTERNAL")
	span.WithAttributes(map[string]string{"fsm.machine": e.name, "fsm.run_id": runID})

	runPolicy := policy.FromContext(ctx)
	e.current = e.start
	var accepted []S
	var runErr error
	reads := 0
	for {
		symbol, err := src.ReadSymbol(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !e.current.Final {
					runErr = &NotAcceptedError{StateID: e.current.ID, Accepted: len(accepted)}
				}
			} else {
				runErr = fmt.Errorf("failed to read symbol: %w", err)
			}
			break
		}
		reads++
		progress.UpdateCtx(ctx, progress.Delta{SymbolsRead: 1})
		if runPolicy != nil {
			if runPolicy.MaxSymbols > 0 && reads > runPolicy.MaxSymbols {
				runErr = &SymbolLimitError{Limit: runPolicy.MaxSymbols, Accepted: len(accepted)}
				break
			}
			if !runPolicy.IsAllowed(toolbox.AsString(symbol)) {
				runErr = &BlockedSymbolError{StateID: e.current.ID, Symbol: symbol, Accepted: len(accepted)}
				break
			}
		}
		if e.pre != nil {
			e.pre(ctx, symbol)
		}
		matched := e.match(symbol)
		if matched == nil {
			runErr = &NoMatchingTransitionError{StateID: e.current.ID, Symbol: symbol, Accepted: len(accepted)}
			break
		}
		e.current = e.states[matched.Target.ID]
		accepted = append(accepted, symbol)
		progress.UpdateCtx(ctx, progress.Delta{SymbolsAccepted: 1, Transitions: 1})
		if e.post != nil {
			e.post(ctx, symbol)
		}
	}

	span.WithAttributes(map[string]string{"fsm.symbols_accepted": strconv.Itoa(len(accepted))})
	tracing.EndSpan(span, runErr)
	return accepted, runErr
}

// match scans the transitions in insertion order and returns the first one
// whose source matches the current state and whose predicate accepts the
// symbol, or nil
func (e *Engine[S]) match(symbol S) *Transition[S] {
	for _, transition := range e.transitions {
		if transition.Source.ID != e.current.ID {
			continue
		}
		if transition.Predicate(symbol) {
			return transition
		}
	}
	return nil
}
