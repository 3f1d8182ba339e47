package model

import (
	"fmt"

	"github.com/viant/toolbox"
)

// Match declaratively describes which symbols a transition accepts. It is
// the document-level counterpart of a symbol predicate: machines defined in
// YAML or the compact notation carry a Match on each transition, which is
// compiled into a predicate when the machine is turned into a runnable
// engine. Exactly one of Equals, OneOf or Any should be populated.
type Match struct {
	// Equals accepts a single symbol value
	Equals interface{} `json:"equals,omitempty" yaml:"equals,omitempty"`

	// OneOf accepts any of the listed symbol values
	OneOf []interface{} `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	// Any accepts every symbol
	Any bool `json:"any,omitempty" yaml:"any,omitempty"`
}

// WhenEquals creates a match accepting a single symbol value
func WhenEquals(value interface{}) *Match {
	return &Match{Equals: value}
}

// WhenOneOf creates a match accepting any of the supplied symbol values
func WhenOneOf(values ...interface{}) *Match {
	return &Match{OneOf: values}
}

// WhenAny creates a match accepting every symbol
func WhenAny() *Match {
	return &Match{Any: true}
}

// Predicate compiles the match into a symbol predicate. Declared values are
// normalised with toolbox.AsString so that scalars decoded from YAML (for
// example the integer 1) and plain text symbols compare uniformly.
func (m *Match) Predicate() (func(string) bool, error) {
	switch {
	case m == nil:
		return nil, fmt.Errorf("match was not defined")
	case m.Any:
		return func(string) bool { return true }, nil
	case m.Equals != nil:
		expect := toolbox.AsString(m.Equals)
		return func(symbol string) bool { return symbol == expect }, nil
	case len(m.OneOf) > 0:
		expect := make(map[string]bool, len(m.OneOf))
		for _, value := range m.OneOf {
			expect[toolbox.AsString(value)] = true
		}
		return func(symbol string) bool { return expect[symbol] }, nil
	}
	return nil, fmt.Errorf("match was empty")
}
