// Package astar defines configuration options and heuristics
// for the A* search over a gridpath grid.
package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from a to b. A* is optimal when
// the heuristic is admissible (never overestimates) and consistent.
type Heuristic func(a, b grid.Coord) float64

// Manhattan is the default heuristic: |ΔRow| + |ΔCol|.
//
// Admissibility caveat: Manhattan distance assumes every traversable step
// costs at least 1. Terrain weights below 1 break the optimality
// guarantee; that is a documented constraint of the heuristic, not a
// condition the search detects or corrects.
func Manhattan(a, b grid.Coord) float64 {
	return float64(a.Manhattan(b))
}

// Zero estimates nothing, turning A* into Dijkstra's algorithm over the
// grid (every frontier ordering decision falls back to g alone).
func Zero(_, _ grid.Coord) float64 { return 0 }

// Options configures one AStar instance.
//
// Heuristic – remaining-cost estimate; Manhattan by default.
// Ctx       – cooperative cancellation, checked once per expansion step.
//
//	The algorithm itself has no suspension points; this is the
//	extension point for callers that want early termination.
type Options struct {
	Heuristic Heuristic
	Ctx       context.Context
}

// Option configures astar behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and a
// background context.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Ctx:       context.Background(),
	}
}

// WithHeuristic replaces the heuristic. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithContext sets a context consulted between expansion steps; when it
// is done, FindPath aborts wholesale and returns the context's error.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
