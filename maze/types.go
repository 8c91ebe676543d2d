// Package maze defines configuration options and sentinel errors for
// maze synthesis over a gridpath grid.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Generate.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrGridTooSmall indicates the grid has no interior to carve rooms
	// in; generation requires at least 3 rows and 3 cols.
	ErrGridTooSmall = errors.New("maze: grid must be at least 3×3")
)

// Algorithm selects the carving strategy. Both produce a perfect maze
// (a spanning tree over the room lattice: no cycles, every open cell
// reachable from every other by exactly one simple path); they differ in
// corridor texture.
type Algorithm int

const (
	// Backtracker is randomized depth-first carving: long winding
	// corridors, few but deep dead ends. The default.
	Backtracker Algorithm = iota
	// Prim is randomized-Prim frontier carving: short branchy corridors,
	// many shallow dead ends.
	Prim
)

// Options contains tunable parameters for Generate.
type Options struct {
	// Rng is the random source driving room and direction choices.
	// Nil means an unseeded, time-derived source.
	Rng *rand.Rand
	// Algo selects the carving strategy; Backtracker by default.
	Algo Algorithm
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the Backtracker strategy and no
// fixed seed.
func DefaultOptions() Options {
	return Options{Algo: Backtracker}
}

// WithSeed makes generation deterministic for a fixed seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned random source. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rng = rng
		}
	}
}

// WithAlgorithm selects the carving strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}
