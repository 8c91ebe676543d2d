// Package bfs provides tunable options for breadth-first search over a
// gridpath grid.
package bfs

import "context"

// Options configures one BFS instance.
//
// Ctx – cooperative cancellation, checked once per dequeue. The search
// itself has no suspension points; this is the extension point for
// callers that want early termination.
type Options struct {
	Ctx context.Context
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context consulted between expansion steps.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
