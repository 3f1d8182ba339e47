// Package dao defines the generic persistence contract used by registries
// of machine definitions. Implementations live in sub-packages; the engine
// itself never persists anything.
package dao

import (
	"context"
)

// Service is a generic keyed store contract
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}

// Parameter is an optional List filter
type Parameter struct {
	Name  string
	Value interface{}
}

// NewParameter creates a list filter parameter
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
