package source

import (
	"context"
	"io"
)

// Slice streams symbols from an in-memory sequence
type Slice[S any] struct {
	symbols []S
	next    int
}

// NewSlice creates a source over the supplied symbols
func NewSlice[S any](symbols ...S) *Slice[S] {
	return &Slice[S]{symbols: symbols}
}

// ReadSymbol returns the next symbol, or io.EOF once the sequence is
// exhausted
func (s *Slice[S]) ReadSymbol(ctx context.Context) (S, error) {
	var zero S
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if s.next >= len(s.symbols) {
		return zero, io.EOF
	}
	symbol := s.symbols[s.next]
	s.next++
	return symbol, nil
}
