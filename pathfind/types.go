// Package pathfind defines the capability contract shared by every
// gridpath search strategy, together with the tagged Result and the
// per-run search scratch.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors shared by Algorithm implementations.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to FindPath.
	ErrNilGrid = errors.New("pathfind: grid is nil")
)

// Outcome tags a Result so that "invalid endpoints" and "no path exists"
// are distinguishable even though both carry an empty Path. Neither is an
// error: search failure is a value the caller checks.
type Outcome int

const (
	// Found means Path holds an inclusive start→goal sequence.
	Found Outcome = iota
	// NoPath means the frontier was exhausted without reaching goal.
	NoPath
	// BadEndpoints means start or goal was out of bounds or on a wall;
	// no search was performed.
	BadEndpoints
)

// String returns the outcome's name.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "Found"
	case NoPath:
		return "NoPath"
	case BadEndpoints:
		return "BadEndpoints"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of one search run:
//   - Outcome:  Found, NoPath, or BadEndpoints.
//   - Path:     inclusive start→goal coordinate sequence; empty unless Found.
//     A search with start == goal yields exactly [start].
//   - Cost:     summed MovementCost along Path (0 unless Found).
//   - Explored: coordinates in finalize order — each at most once, in
//     non-decreasing popped-f order for best-first strategies.
//   - States:   the per-node scratch left by the run, for consumers that
//     replay g/h/f/parent/visit-order (visualizers, tests).
type Result struct {
	Outcome  Outcome
	Path     []grid.Coord
	Cost     float64
	Explored []grid.Coord
	States   *Scratch
}

// Algorithm is the polymorphic search contract: any strategy operating on
// a grid.Grid plugs in here and honors the same explored-trace convention.
//
// FindPath returns a tagged Result; its error is reserved for a nil grid
// and for caller-layered cancellation (see astar.WithContext). Endpoint
// problems and unreachable goals are Outcome values, never errors.
//
// ExploredNodes reports the finalize-order trace of the most recent run,
// empty before any run. Implementations are not safe for concurrent use
// of one instance; use one Algorithm value per goroutine.
type Algorithm interface {
	FindPath(g *grid.Grid, start, goal grid.Coord) (*Result, error)
	ExploredNodes() []grid.Coord
}
