// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a grid was requested with non-positive rows or cols.
	ErrBadDimensions = errors.New("grid: rows and cols must each be at least one")
	// ErrOutOfBounds indicates a coordinate outside the lattice was given
	// to an operation that requires an in-bounds cell.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrWallEndpoint indicates start or goal was placed on a wall cell.
	ErrWallEndpoint = errors.New("grid: endpoint cell is a wall")
	// ErrBadDensity indicates a wall density outside the closed interval [0,1].
	ErrBadDensity = errors.New("grid: wall density must lie in [0,1]")
)

// DefaultWeight is the terrain weight every cell starts with.
// MovementCost returns the destination's weight, so a uniform grid
// costs exactly one per step.
const DefaultWeight = 1.0

// Coord identifies a single cell by (Row, Col). Two cells are equal iff
// their coordinates match; Coord is comparable and safe as a map key,
// which governs all closed-set and frontier membership tests downstream.
type Coord struct {
	Row, Col int
}

// Manhattan returns |ΔRow| + |ΔCol| between c and other.
// Complexity: O(1).
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Node is a static cell view: identity plus terrain weight.
// Transient search fields (g, h, f, parent, visit order) are deliberately
// NOT here — they live in pathfind.Scratch so that multiple searches can
// run over one read-only Grid without interfering.
type Node struct {
	Row, Col int
	Weight   float64
}

// Coord returns the node's identity as a Coord.
func (n Node) Coord() Coord { return Coord{Row: n.Row, Col: n.Col} }

// neighborOffsets is the fixed 4-directional visit order: up, down, left,
// right. The order is part of the public contract — it pins deterministic
// neighbor iteration, and with it deterministic exploration order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// RandOptions holds tunable parameters for randomized wall placement.
type RandOptions struct {
	// Rng is the random source used for Bernoulli trials.
	// Nil means an unseeded, time-derived source.
	Rng *rand.Rand
}

// RandOption configures RandomWalls via functional arguments.
type RandOption func(*RandOptions)

// WithSeed makes wall placement deterministic for a fixed seed.
func WithSeed(seed int64) RandOption {
	return func(o *RandOptions) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned random source. A nil rng is ignored.
func WithRand(rng *rand.Rand) RandOption {
	return func(o *RandOptions) {
		if rng != nil {
			o.Rng = rng
		}
	}
}
