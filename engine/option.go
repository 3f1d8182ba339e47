package engine

import "context"

// Hook is an optional extension point invoked with the current symbol
// around transition selection. Hooks may perform arbitrary caller-defined
// side effects but cannot alter the current state or the run's determinism.
type Hook[S any] func(ctx context.Context, symbol S)

// Hooks groups the pre/post transit extension points. OnPreTransit runs
// immediately before transition selection; OnPostTransit runs immediately
// after a successful transition, so it never fires for a rejected symbol.
type Hooks[S any] interface {
	OnPreTransit(ctx context.Context, symbol S)
	OnPostTransit(ctx context.Context, symbol S)
}

// Option customises an engine
type Option[S any] func(e *Engine[S])

// WithName sets the machine name reported in tracing attributes
func WithName[S any](name string) Option[S] {
	return func(e *Engine[S]) { e.name = name }
}

// WithRunID sets the identifier attached to runs of this engine; when
// unset every run generates its own
func WithRunID[S any](id string) Option[S] {
	return func(e *Engine[S]) { e.runID = id }
}

// WithPreTransit sets the hook invoked before transition selection
func WithPreTransit[S any](hook Hook[S]) Option[S] {
	return func(e *Engine[S]) { e.pre = hook }
}

// WithPostTransit sets the hook invoked after a successful transition
func WithPostTransit[S any](hook Hook[S]) Option[S] {
	return func(e *Engine[S]) { e.post = hook }
}

// WithHooks sets both transit hooks from the supplied implementation
func WithHooks[S any](hooks Hooks[S]) Option[S] {
	return func(e *Engine[S]) {
		e.pre = hooks.OnPreTransit
		e.post = hooks.OnPostTransit
	}
}
