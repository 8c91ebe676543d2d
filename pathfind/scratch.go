package pathfind

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// UnvisitedOrder is the VisitOrder sentinel for a node the last run never
// finalized.
const UnvisitedOrder = -1

// NodeState is the transient per-node search scratch:
//   - G:          best known cost from start (+Inf until relaxed).
//   - H:          heuristic estimate to goal.
//   - F:          G + H, maintained via SetG/SetH.
//   - Parent:     back-reference toward start as a coordinate pair, valid
//     only when HasParent; it always points strictly toward start, so
//     parent chains cannot cycle.
//   - VisitOrder: rank at which the node was finalized (UnvisitedOrder if not).
//   - Explored:   mirrors VisitOrder >= 0.
//
// NodeState has meaning only during and after the run that produced it.
type NodeState struct {
	G, H, F    float64
	Parent     grid.Coord
	HasParent  bool
	VisitOrder int
	Explored   bool
}

// SetG updates the best known cost and recomputes F.
func (s *NodeState) SetG(g float64) {
	s.G = g
	s.F = s.G + s.H
}

// SetH updates the heuristic estimate and recomputes F.
func (s *NodeState) SetH(h float64) {
	s.H = h
	s.F = s.G + s.H
}

// Scratch is a dense per-run lattice of NodeState, row-major, sized to
// one Grid. Each search run owns its own Scratch; the grid itself stays
// read-only, so several runs may share one Grid.
type Scratch struct {
	rows, cols int
	states     []NodeState
}

// NewScratch allocates a reset rows×cols scratch lattice.
// Complexity: O(rows×cols).
func NewScratch(rows, cols int) *Scratch {
	s := &Scratch{
		rows:   rows,
		cols:   cols,
		states: make([]NodeState, rows*cols),
	}
	s.Reset()

	return s
}

// Reset clears every scratch field: G and F to +Inf, H to zero, parent
// cleared, VisitOrder to UnvisitedOrder, Explored false. Walls, weights
// and endpoints live on the Grid and are untouched.
// Complexity: O(rows×cols).
func (s *Scratch) Reset() {
	inf := math.Inf(1)
	for i := range s.states {
		s.states[i] = NodeState{
			G:          inf,
			F:          inf,
			VisitOrder: UnvisitedOrder,
		}
	}
}

// At returns the mutable state of cell c. The caller must ensure c is in
// bounds for the grid this scratch was sized to.
// Complexity: O(1).
func (s *Scratch) At(c grid.Coord) *NodeState {
	return &s.states[c.Row*s.cols+c.Col]
}

// StateAt returns a copy of the state at (r,c) and true, or a zero state
// and false out of bounds.
func (s *Scratch) StateAt(r, c int) (NodeState, bool) {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return NodeState{}, false
	}

	return s.states[r*s.cols+c], true
}

// Rows returns the scratch lattice height.
func (s *Scratch) Rows() int { return s.rows }

// Cols returns the scratch lattice width.
func (s *Scratch) Cols() int { return s.cols }
