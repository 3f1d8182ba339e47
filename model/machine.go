package model

// Machine represents a deterministic finite-state machine definition. A
// machine is typically either assembled programmatically with the fluent
// builder API or decoded from a YAML document / compact notation, and then
// compiled into a runnable engine.
type Machine struct {
	// Source provides information about the origin of the definition
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Name identifies the machine
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// States holds the machine states in registration order
	States []*State `json:"states" yaml:"states"`

	// Transitions holds the machine transitions in registration order;
	// the order is semantically significant - the run loop takes the
	// earliest registered transition that matches (first-match policy)
	Transitions []*Transition `json:"transitions" yaml:"transitions"`
}

// NewMachine creates an empty machine with the supplied name
func NewMachine(name string) *Machine {
	return &Machine{Name: name}
}

// NewState appends a new state and returns it for further adjustment
func (m *Machine) NewState(id string) *State {
	state := NewState(id)
	m.States = append(m.States, state)
	return state
}

// AddState appends the supplied state
func (m *Machine) AddState(state *State) *Machine {
	m.States = append(m.States, state)
	return m
}

// WithTransition appends a transition between the supplied state ids
func (m *Machine) WithTransition(from, to string, when *Match) *Machine {
	m.Transitions = append(m.Transitions, NewTransition(from, to, when))
	return m
}

// State returns the registered state with the supplied id, or nil
func (m *Machine) State(id string) *State {
	for _, candidate := range m.States {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

// StartState returns the state marked as start, or nil
func (m *Machine) StartState() *State {
	for _, candidate := range m.States {
		if candidate.Start {
			return candidate
		}
	}
	return nil
}

// Validate performs structural validation of the machine definition. The
// checks run in a fixed order, each failing fast with a distinct error
// kind: duplicate state ids, start-state cardinality (exactly one),
// final-state presence (at least one) and transition endpoint resolution.
// Validate is idempotent and does not evaluate any predicate.
func (m *Machine) Validate() error {
	index := make(map[string]*State, len(m.States))
	var starts []string
	hasFinal := false
	for _, state := range m.States {
		if _, ok := index[state.ID]; ok {
			return &DuplicateStateError{ID: state.ID}
		}
		index[state.ID] = state
		if state.Start {
			starts = append(starts, state.ID)
		}
		if state.Final {
			hasFinal = true
		}
	}
	if len(starts) == 0 {
		return ErrNoStartState
	}
	if len(starts) > 1 {
		return &MultipleStartStatesError{IDs: starts}
	}
	if !hasFinal {
		return ErrNoFinalState
	}
	for _, transition := range m.Transitions {
		if _, ok := index[transition.From]; !ok {
			return &UnknownStateError{StateID: transition.From, Side: "source"}
		}
		if _, ok := index[transition.To]; !ok {
			return &UnknownStateError{StateID: transition.To, Side: "target"}
		}
	}
	return nil
}
