// Package grid models a dense rows×cols lattice as the topology for
// grid-based pathfinding. It stores walls, per-cell terrain weights, and
// at most one start/goal endpoint, and answers the neighbor and movement
// cost queries the search packages build on.
//
// Cells outside the lattice are impassable: IsWall answers true and
// MovementCost answers +Inf for out-of-bounds coordinates, so callers
// never need a separate bounds check before a passability test.
package grid

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

// Grid is a fixed-size cell lattice. Dimensions are set at construction
// and never change; the backing storage is never reallocated.
//
// Walls and weights persist across searches. A Grid instance must not be
// mutated concurrently with an in-flight search or maze generation over
// the same instance; that single-writer discipline is the caller's.
type Grid struct {
	rows, cols int
	walls      []bool    // row-major; true => blocked
	weights    []float64 // row-major; DefaultWeight unless set

	start, goal       Coord
	hasStart, hasGoal bool
}

// New constructs an empty (wall-free, uniform-weight) rows×cols grid.
// Returns ErrBadDimensions if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		rows:    rows,
		cols:    cols,
		walls:   make([]bool, rows*cols),
		weights: make([]float64, rows*cols),
	}
	for i := range g.weights {
		g.weights[i] = DefaultWeight
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps a coordinate to its row-major slice index: Row*Cols + Col.
// The caller must ensure the coordinate is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordAt converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// IsWall reports whether (r,c) is blocked. Out-of-bounds coordinates are
// reported as walls: anything outside the lattice is impassable.
// Complexity: O(1).
func (g *Grid) IsWall(r, c int) bool {
	if !g.InBounds(r, c) {
		return true
	}

	return g.walls[r*g.cols+c]
}

// SetWall sets the wall flag at (r,c). No-op out of bounds.
func (g *Grid) SetWall(r, c int, wall bool) {
	if !g.InBounds(r, c) {
		return
	}
	g.walls[r*g.cols+c] = wall
}

// ToggleWall flips the wall flag at (r,c). No-op out of bounds.
func (g *Grid) ToggleWall(r, c int) {
	if !g.InBounds(r, c) {
		return
	}
	g.walls[r*g.cols+c] = !g.walls[r*g.cols+c]
}

// WeightAt returns the terrain weight at (r,c), or DefaultWeight for
// out-of-bounds coordinates (out-of-bounds cells are never traversable
// anyway, see IsWall).
func (g *Grid) WeightAt(r, c int) float64 {
	if !g.InBounds(r, c) {
		return DefaultWeight
	}

	return g.weights[r*g.cols+c]
}

// SetWeight assigns the terrain weight at (r,c). No-op out of bounds.
// Weights persist across searches and across RandomWalls.
// Note: a Manhattan-heuristic search is only guaranteed optimal while
// all traversable weights are ≥ 1 (see the astar package).
func (g *Grid) SetWeight(r, c int, w float64) {
	if !g.InBounds(r, c) {
		return
	}
	g.weights[r*g.cols+c] = w
}

// NodeAt returns the static cell view at (r,c) and true, or a zero Node
// and false out of bounds.
func (g *Grid) NodeAt(r, c int) (Node, bool) {
	if !g.InBounds(r, c) {
		return Node{}, false
	}

	return Node{Row: r, Col: c, Weight: g.weights[r*g.cols+c]}, true
}

// SetStart stamps the start endpoint. Returns ErrOutOfBounds for a
// coordinate outside the lattice and ErrWallEndpoint when the cell is
// currently a wall. The invariant is checked here, at the mutation call;
// a later SetWall on the same cell is not self-healing.
func (g *Grid) SetStart(c Coord) error {
	if err := g.checkEndpoint(c); err != nil {
		return err
	}
	g.start, g.hasStart = c, true

	return nil
}

// SetGoal stamps the goal endpoint, with the same validation as SetStart.
func (g *Grid) SetGoal(c Coord) error {
	if err := g.checkEndpoint(c); err != nil {
		return err
	}
	g.goal, g.hasGoal = c, true

	return nil
}

// checkEndpoint validates the shared start/goal invariant.
func (g *Grid) checkEndpoint(c Coord) error {
	if !g.InBounds(c.Row, c.Col) {
		return ErrOutOfBounds
	}
	if g.walls[g.Index(c)] {
		return ErrWallEndpoint
	}

	return nil
}

// ClearStart removes the start endpoint.
func (g *Grid) ClearStart() { g.hasStart = false }

// ClearGoal removes the goal endpoint.
func (g *Grid) ClearGoal() { g.hasGoal = false }

// Start returns the start endpoint and whether one is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Goal returns the goal endpoint and whether one is set.
func (g *Grid) Goal() (Coord, bool) { return g.goal, g.hasGoal }

// Neighbors returns the passable 4-directional neighbors of c in the
// fixed order up, down, left, right, filtered by bounds and wall status.
// The fixed order pins deterministic exploration for every search built
// on this grid. The returned slice is freshly allocated.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	nb := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if g.IsWall(nr, nc) { // covers both bounds and wall checks
			continue
		}
		nb = append(nb, Coord{Row: nr, Col: nc})
	}

	return nb
}

// MovementCost returns the cost of stepping from one cell onto an
// adjacent one: the destination's terrain weight. Directional or
// asymmetric costs are not modeled. Either endpoint out of bounds
// yields +Inf (fail-closed, matching IsWall).
// Complexity: O(1).
func (g *Grid) MovementCost(from, to Coord) float64 {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return math.Inf(1)
	}

	return g.weights[g.Index(to)]
}

// RandomWalls makes each cell independently a wall with probability
// density, overwriting the previous wall layout. Returns ErrBadDensity
// for density outside [0,1]. Start/goal cells are NOT preserved open;
// callers re-stamp them afterwards (SetWall(start.Row, start.Col, false)).
//
// Pass WithSeed or WithRand for reproducible layouts; by default a
// time-derived source is used. Trial order is row-major, so outcomes are
// deterministic for a fixed source.
// Complexity: O(rows×cols).
func (g *Grid) RandomWalls(density float64, opts ...RandOption) error {
	if density < 0 || density > 1 {
		return ErrBadDensity
	}
	o := RandOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range g.walls {
		g.walls[i] = rng.Float64() < density
	}

	return nil
}

// ResetAll clears every wall and resets every weight to DefaultWeight.
// When clearStartGoal is true the endpoints are cleared as well.
// Complexity: O(rows×cols).
func (g *Grid) ResetAll(clearStartGoal bool) {
	for i := range g.walls {
		g.walls[i] = false
		g.weights[i] = DefaultWeight
	}
	if clearStartGoal {
		g.hasStart = false
		g.hasGoal = false
	}
}

// String renders the grid as ASCII rows: 'S' start, 'G' goal, '#' wall,
// '.' open. Useful while debugging; not a rendering layer.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch {
			case g.hasStart && g.start.Row == r && g.start.Col == c:
				sb.WriteByte('S')
			case g.hasGoal && g.goal.Row == r && g.goal.Col == c:
				sb.WriteByte('G')
			case g.walls[r*g.cols+c]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
