package model

// State represents a single named machine state. States are value objects –
// identity is keyed by ID, and the start/final flags carry no behaviour of
// their own. Flag consistency (exactly one start, at least one final) is
// only meaningful against the full state set and is therefore checked by
// Machine.Validate rather than at construction time.
type State struct {
	// ID uniquely identifies the state within one machine
	ID string `json:"id" yaml:"id"`

	// Start marks the state the run begins in
	Start bool `json:"start,omitempty" yaml:"start,omitempty"`

	// Final marks a state in which exhausted input is accepted
	Final bool `json:"final,omitempty" yaml:"final,omitempty"`
}

// NewState creates a state with the supplied id
func NewState(id string) *State {
	return &State{ID: id}
}

// WithStart marks the state as the start state
func (s *State) WithStart() *State {
	s.Start = true
	return s
}

// WithFinal marks the state as a final state
func (s *State) WithFinal() *State {
	s.Final = true
	return s
}
