// Package bfs implements breadth-first search over a gridpath grid,
// the unweighted variant of the pathfind.Algorithm contract.
//
// BFS expands cells in increasing hop count from start using a FIFO
// frontier. Every step counts as exactly one move: terrain weights on the
// grid are deliberately ignored, so the returned path minimizes moves,
// not summed MovementCost. Use astar (with the Zero heuristic for
// Dijkstra behavior) when weights matter.
//
// Complexity:
//
//   - Time:  O(V + E) for V cells and E ≤ 4V lattice edges.
//   - Space: O(V) for scratch, queue, and seen flags.
package bfs

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// BFS is the unweighted pathfind.Algorithm variant. Construct with New.
// One instance retains the explored trace of its most recent run and is
// not safe for concurrent use of a single value.
type BFS struct {
	opts Options
	last []grid.Coord
}

// compile-time contract check
var _ pathfind.Algorithm = (*BFS)(nil)

// New constructs a BFS with the given functional options applied over
// DefaultOptions.
func New(opts ...Option) *BFS {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &BFS{opts: o}
}

// FindPath runs breadth-first search from start to goal over g.
//
// The Result follows the shared contract: BadEndpoints for out-of-bounds
// or walled endpoints, NoPath when the frontier empties, Found otherwise
// with the inclusive start→goal Path. Cost is the number of moves (every
// step is unit cost). Scratch G holds hop counts; H stays zero, so F
// mirrors G and the explored trace is in non-decreasing f order.
// An error is returned only for a nil grid or a done context.
//
// Complexity: O(V + E).
func (b *BFS) FindPath(g *grid.Grid, start, goal grid.Coord) (*pathfind.Result, error) {
	b.last = nil
	if g == nil {
		return nil, pathfind.ErrNilGrid
	}
	if g.IsWall(start.Row, start.Col) || g.IsWall(goal.Row, goal.Col) {
		b.last = []grid.Coord{}

		return &pathfind.Result{Outcome: pathfind.BadEndpoints, Explored: b.last}, nil
	}

	// Fresh per-run scratch; the grid stays read-only from here on.
	scratch := pathfind.NewScratch(g.Rows(), g.Cols())
	st := scratch.At(start)
	st.SetG(0)
	st.VisitOrder = 0
	st.Explored = true

	seen := make([]bool, g.Rows()*g.Cols())
	seen[g.Index(start)] = true
	queue := make([]grid.Coord, 0, 16)
	queue = append(queue, start)

	var explored []grid.Coord
	counter := 0
	for len(queue) > 0 {
		// cancellation check, once per dequeue
		select {
		case <-b.opts.Ctx.Done():
			return nil, b.opts.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		// finalize: sequential visit order and trace append
		cs := scratch.At(cur)
		cs.VisitOrder = counter
		counter++
		cs.Explored = true
		explored = append(explored, cur)

		if cur == goal {
			res := finish(goal, scratch, explored)
			b.last = res.Explored

			return res, nil
		}

		for _, nbr := range g.Neighbors(cur) {
			idx := g.Index(nbr)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			ns := scratch.At(nbr)
			ns.Parent = cur
			ns.HasParent = true
			ns.SetG(cs.G + 1) // unit cost per move, weights ignored
			queue = append(queue, nbr)
		}
	}

	res := &pathfind.Result{
		Outcome:  pathfind.NoPath,
		Explored: explored,
		States:   scratch,
	}
	b.last = explored

	return res, nil
}

// ExploredNodes returns the dequeue-order trace of the most recent run,
// or an empty slice before any run.
func (b *BFS) ExploredNodes() []grid.Coord {
	if b.last == nil {
		return []grid.Coord{}
	}

	return b.last
}

// FindPath is a convenience wrapper: New(opts...).FindPath(g, start, goal).
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*pathfind.Result, error) {
	return New(opts...).FindPath(g, start, goal)
}

// finish builds the Found result by walking parent links goal→start and
// reversing.
func finish(goal grid.Coord, scratch *pathfind.Scratch, explored []grid.Coord) *pathfind.Result {
	path := []grid.Coord{}
	for cur := goal; ; {
		path = append(path, cur)
		st := scratch.At(cur)
		if !st.HasParent {
			break
		}
		cur = st.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &pathfind.Result{
		Outcome:  pathfind.Found,
		Path:     path,
		Cost:     float64(len(path) - 1),
		Explored: explored,
		States:   scratch,
	}
}
