// Package maze rewrites a gridpath grid's walls in place into a perfect
// maze: a spanning tree over a half-resolution room lattice.
//
// Odd-coordinate cells are "rooms" and the even-coordinate cells between
// two adjacent rooms are "doors". Generation fills the whole grid with
// walls, then carves rooms and doors so that exactly openRooms − 1 doors
// end up open — the spanning-tree property: no cycles, every open cell
// reachable from every other by exactly one simple path.
//
// Two carving strategies are provided (see Algorithm); both use an
// explicit work list rather than recursion, so arbitrarily large grids
// cannot overflow the stack.
//
// Post-condition: if the grid has start/goal endpoints set, their cells
// are forcibly reopened regardless of maze topology. That may create a
// short dead-end stub off the maze body — an accepted trade-off.
//
// Complexity: O(rows×cols) time and memory for either strategy.
package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// room-lattice step: rooms sit two cells apart, with a door between.
var carveDirs = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Generate rewrites g's walls in place into a perfect maze.
// Returns ErrNilGrid for a nil grid and ErrGridTooSmall when the grid
// has no interior room (fewer than 3 rows or 3 cols). Terrain weights
// and endpoints are untouched apart from the forced-open post-condition.
//
// Pass WithSeed or WithRand for reproducible layouts.
// Complexity: O(rows×cols).
func Generate(g *grid.Grid, opts ...Option) error {
	// 1) Validate input and build options.
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() < 3 || g.Cols() < 3 {
		return ErrGridTooSmall
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2) Fill the entire grid with walls.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.SetWall(r, c, true)
		}
	}

	// 3) Pick a random odd-coordinate room inside the interior
	//    (the outer 1-cell border is never carved).
	root := grid.Coord{
		Row: 1 + 2*rng.Intn((g.Rows()-1)/2),
		Col: 1 + 2*rng.Intn((g.Cols()-1)/2),
	}

	// 4) Carve with the selected strategy.
	switch o.Algo {
	case Prim:
		carvePrim(g, root, rng)
	default:
		carveBacktracker(g, root, rng)
	}

	// 5) Forced-open post-condition for previously set endpoints.
	if s, ok := g.Start(); ok {
		g.SetWall(s.Row, s.Col, false)
	}
	if t, ok := g.Goal(); ok {
		g.SetWall(t.Row, t.Col, false)
	}

	return nil
}

// interiorRoom reports whether (r,c) is a room cell strictly inside the
// outer border.
func interiorRoom(g *grid.Grid, r, c int) bool {
	return r > 0 && r < g.Rows()-1 && c > 0 && c < g.Cols()-1
}

// carveBacktracker is randomized depth-first carving with an explicit
// work stack (the iterative form of the recursive backtracker).
//
// Invariant: every room on the stack is open; the top room carves toward
// a random still-walled neighbor room two cells away, opening the door
// in between, or pops when no candidate remains.
func carveBacktracker(g *grid.Grid, root grid.Coord, rng *rand.Rand) {
	g.SetWall(root.Row, root.Col, false)
	stack := []grid.Coord{root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// gather directions whose room 2 cells away is interior and
		// still fully wall
		candidates := make([][2]int, 0, 4)
		for _, d := range carveDirs {
			nr, nc := cur.Row+d[0], cur.Col+d[1]
			if interiorRoom(g, nr, nc) && g.IsWall(nr, nc) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			// dead end: backtrack
			stack = stack[:len(stack)-1]

			continue
		}

		// open the intervening door and the next room, then descend
		d := candidates[rng.Intn(len(candidates))]
		g.SetWall(cur.Row+d[0]/2, cur.Col+d[1]/2, false)
		next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		g.SetWall(next.Row, next.Col, false)
		stack = append(stack, next)
	}
}

// carvePrim is randomized-Prim frontier carving: grow the carved region
// by repeatedly attaching a random frontier room through a door to a
// random already-open neighbor room.
//
// The result is still a spanning tree — each room is opened exactly once,
// through exactly one door — but corridors come out short and branchy
// instead of long and winding.
func carvePrim(g *grid.Grid, root grid.Coord, rng *rand.Rand) {
	g.SetWall(root.Row, root.Col, false)

	// frontier: walled interior rooms adjacent (2 cells) to the carved
	// region; inFrontier dedupes membership by row-major index
	frontier := make([]grid.Coord, 0, 16)
	inFrontier := make([]bool, g.Rows()*g.Cols())
	pushNeighbors := func(room grid.Coord) {
		for _, d := range carveDirs {
			nr, nc := room.Row+d[0], room.Col+d[1]
			if !interiorRoom(g, nr, nc) || !g.IsWall(nr, nc) {
				continue
			}
			idx := nr*g.Cols() + nc
			if inFrontier[idx] {
				continue
			}
			inFrontier[idx] = true
			frontier = append(frontier, grid.Coord{Row: nr, Col: nc})
		}
	}
	pushNeighbors(root)

	for len(frontier) > 0 {
		// pick a random frontier room (swap-remove keeps this O(1))
		i := rng.Intn(len(frontier))
		room := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		inFrontier[room.Row*g.Cols()+room.Col] = false

		// choose a random open room it can attach to
		attach := make([][2]int, 0, 4)
		for _, d := range carveDirs {
			nr, nc := room.Row+d[0], room.Col+d[1]
			if interiorRoom(g, nr, nc) && !g.IsWall(nr, nc) {
				attach = append(attach, d)
			}
		}
		if len(attach) == 0 {
			continue
		}
		d := attach[rng.Intn(len(attach))]
		g.SetWall(room.Row+d[0]/2, room.Col+d[1]/2, false)
		g.SetWall(room.Row, room.Col, false)
		pushNeighbors(room)
	}
}
