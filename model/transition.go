package model

// Transition is a definition-level edge between two states identified by id.
// The When clause selects the symbols the transition accepts. Endpoint
// resolution against the machine state set is deferred to Machine.Validate
// so that partially assembled definitions remain constructible.
type Transition struct {
	// From is the source state id
	From string `json:"from" yaml:"from"`

	// To is the target state id
	To string `json:"to" yaml:"to"`

	// When selects the symbols this transition accepts
	When *Match `json:"when,omitempty" yaml:"when,omitempty"`
}

// NewTransition creates a transition between the supplied state ids
func NewTransition(from, to string, when *Match) *Transition {
	return &Transition{From: from, To: to, When: when}
}

// Predicate compiles the transition's When clause into a symbol predicate
func (t *Transition) Predicate() (func(string) bool, error) {
	return t.When.Predicate()
}
