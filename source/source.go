package source

import "context"

// Source supplies one symbol per call. Implementations return io.EOF once
// the input is exhausted; the engine treats that as the normal end-of-input
// signal rather than a failure. Any other error aborts the run.
type Source[S any] interface {
	ReadSymbol(ctx context.Context) (S, error)
}

// Func adapts a plain function to the Source interface
type Func[S any] func(ctx context.Context) (S, error)

// ReadSymbol invokes the adapted function
func (f Func[S]) ReadSymbol(ctx context.Context) (S, error) {
	return f(ctx)
}
