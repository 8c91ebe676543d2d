// Package astar implements A* informed best-first search over a
// gridpath grid.
//
// A* expands nodes in ascending f = g + h order, where g is the best
// known cost from start and h is a heuristic estimate of the remaining
// cost to goal. With an admissible, consistent heuristic (Manhattan, on
// grids whose traversable weights are all ≥ 1) the first time the goal
// is finalized its path is cost-minimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V cells and E ≤ 4V lattice edges.
//   - Each cell is finalized at most once: V pops that do work.
//   - Each relaxation may push a duplicate frontier entry: up to E pushes.
//   - Space: O(V) scratch + O(E) worst-case frontier under lazy deletion.
//
// Notes on implementation choices:
//
//   - The frontier is a plain min-heap without decrease-key; improving a
//     cell's cost pushes a second entry and the stale one is discarded on
//     pop against the closed set ("lazy deletion" — duplicates are
//     expected, not an error).
//   - Tie-breaking among equal-f entries is pinned: lower g wins, then
//     earlier insertion, so explored order and chosen path are
//     reproducible run to run.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// AStar is the informed best-first pathfind.Algorithm variant. The zero
// value is not usable; construct with New. One instance retains the
// explored trace of its most recent run and is not safe for concurrent
// use; give each goroutine its own instance.
type AStar struct {
	opts Options
	last []grid.Coord
}

// compile-time contract check
var _ pathfind.Algorithm = (*AStar)(nil)

// New constructs an AStar with the given functional options applied over
// DefaultOptions (Manhattan heuristic, background context).
func New(opts ...Option) *AStar {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &AStar{opts: o}
}

// FindPath runs A* from start to goal over g.
//
// Returns:
//
//   - A tagged *pathfind.Result. Outcome is BadEndpoints when start or
//     goal is out of bounds or on a wall (no search performed), NoPath
//     when the frontier empties without reaching goal, Found otherwise.
//     Path is the inclusive start→goal sequence; start == goal yields
//     exactly [start] with Cost 0.
//   - An error only for a nil grid (pathfind.ErrNilGrid) or when the
//     configured context is done mid-search.
//
// Complexity: O((V + E) log V), see the package comment.
func (a *AStar) FindPath(g *grid.Grid, start, goal grid.Coord) (*pathfind.Result, error) {
	a.last = nil
	if g == nil {
		return nil, pathfind.ErrNilGrid
	}

	// 1) Validate endpoints. IsWall is fail-closed, so one test covers
	//    both bounds and wall status. Invalid endpoints are an Outcome,
	//    never an error.
	if g.IsWall(start.Row, start.Col) || g.IsWall(goal.Row, goal.Col) {
		a.last = []grid.Coord{}

		return &pathfind.Result{Outcome: pathfind.BadEndpoints, Explored: a.last}, nil
	}

	// 2) Fresh per-run scratch: g=+Inf, f=+Inf, h=0, no parents,
	//    VisitOrder=-1. The grid itself is read-only from here on.
	scratch := pathfind.NewScratch(g.Rows(), g.Cols())

	// 3) Seed the start cell: g=0, h=heuristic(start,goal), visit order 0.
	st := scratch.At(start)
	st.SetH(a.opts.Heuristic(start, goal))
	st.SetG(0)
	st.VisitOrder = 0
	st.Explored = true

	// 4) Initialize runner state: frontier heap, closed set, trace.
	r := &runner{
		g:       g,
		goal:    goal,
		opts:    a.opts,
		scratch: scratch,
		closed:  make([]bool, g.Rows()*g.Cols()),
	}
	heap.Init(&r.open)
	r.push(start, st.F, st.G)

	// 5) Main loop.
	res, err := r.run()
	if err != nil {
		return nil, err
	}
	a.last = res.Explored

	return res, nil
}

// ExploredNodes returns the finalize-order trace of the most recent run,
// or an empty slice before any run.
func (a *AStar) ExploredNodes() []grid.Coord {
	if a.last == nil {
		return []grid.Coord{}
	}

	return a.last
}

// FindPath is a convenience wrapper: New(opts...).FindPath(g, start, goal).
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*pathfind.Result, error) {
	return New(opts...).FindPath(g, start, goal)
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	g        *grid.Grid
	goal     grid.Coord
	opts     Options
	scratch  *pathfind.Scratch
	open     frontier     // min-heap of entries, ordered by (f, g, seq)
	closed   []bool       // row-major finalized flags
	explored []grid.Coord // finalize-order trace
	counter  int          // next visit order to assign
	seq      int          // insertion sequence for the pinned tie-break
}

// push inserts a frontier entry for c with the given priorities.
func (r *runner) push(c grid.Coord, f, g float64) {
	heap.Push(&r.open, entry{c: c, f: f, g: g, seq: r.seq})
	r.seq++
}

// run drains the frontier until goal is finalized, the frontier empties,
// or the context is done.
func (r *runner) run() (*pathfind.Result, error) {
	for r.open.Len() > 0 {
		// Cooperative cancellation, once per expansion step.
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the minimum-f entry.
		e := heap.Pop(&r.open).(entry)
		idx := r.g.Index(e.c)

		// 2) Lazy deletion: the frontier may hold stale duplicates for a
		//    cell whose cost has since improved; discard on pop.
		if r.closed[idx] {
			continue
		}

		// 3) Finalize: next sequential visit order, trace append, close.
		st := r.scratch.At(e.c)
		st.VisitOrder = r.counter
		r.counter++
		st.Explored = true
		r.explored = append(r.explored, e.c)
		r.closed[idx] = true

		// 4) Goal reached — reconstruct and stop.
		if e.c == r.goal {
			return r.finish(st.G), nil
		}

		// 5) Relax every passable, non-closed neighbor.
		r.relax(e.c, st.G)
	}

	// 6) Frontier exhausted: no path, as a value.
	return &pathfind.Result{
		Outcome:  pathfind.NoPath,
		Explored: r.explored,
		States:   r.scratch,
	}, nil
}

// relax attempts to improve each neighbor of cur, pushing a new frontier
// entry on every strict improvement (the stale copy, if any, remains for
// lazy deletion).
func (r *runner) relax(cur grid.Coord, curG float64) {
	for _, nbr := range r.g.Neighbors(cur) {
		if r.closed[r.g.Index(nbr)] {
			continue
		}
		tentative := curG + r.g.MovementCost(cur, nbr)
		ns := r.scratch.At(nbr)
		// Strictly-less keeps equal-cost rediscoveries out of the heap.
		if tentative >= ns.G {
			continue
		}
		ns.Parent = cur
		ns.HasParent = true
		ns.SetH(r.opts.Heuristic(nbr, r.goal))
		ns.SetG(tentative)
		r.push(nbr, ns.F, ns.G)
	}
}

// finish builds the Found result by walking parent links goal→start and
// reversing. Parents always point strictly toward start, so the walk
// terminates at the start cell (the only finalized cell without one).
func (r *runner) finish(cost float64) *pathfind.Result {
	path := []grid.Coord{}
	for cur := r.goal; ; {
		path = append(path, cur)
		st := r.scratch.At(cur)
		if !st.HasParent {
			break
		}
		cur = st.Parent
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &pathfind.Result{
		Outcome:  pathfind.Found,
		Path:     path,
		Cost:     cost,
		Explored: r.explored,
		States:   r.scratch,
	}
}

// entry is one frontier element. Stale duplicates for the same cell are
// expected under lazy deletion.
type entry struct {
	c    grid.Coord
	f, g float64
	seq  int
}

// frontier is a min-heap of entries with the pinned tie-break:
// ascending f, then ascending g, then insertion order.
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, breaking ties by lower g, then earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
