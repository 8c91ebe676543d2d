// Package maze_test contains unit tests for maze synthesis: the
// spanning-tree property (edge count and full connectivity), seed
// determinism, the forced-open endpoint post-condition, and validation.
package maze_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/pathfind"
)

// openCells lists every non-wall coordinate.
func openCells(g *grid.Grid) []grid.Coord {
	var cells []grid.Coord
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.IsWall(r, c) {
				cells = append(cells, grid.Coord{Row: r, Col: c})
			}
		}
	}

	return cells
}

// openEdges counts unordered adjacent open pairs, scanning right and
// down once per cell so each edge is counted exactly once.
func openEdges(g *grid.Grid) int {
	edges := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.IsWall(r, c) {
				continue
			}
			if !g.IsWall(r, c+1) {
				edges++
			}
			if !g.IsWall(r+1, c) {
				edges++
			}
		}
	}

	return edges
}

// floodSize counts open cells reachable from root.
func floodSize(g *grid.Grid, root grid.Coord) int {
	seen := map[grid.Coord]bool{root: true}
	queue := []grid.Coord{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range g.Neighbors(cur) {
			if !seen[nbr] {
				seen[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return len(seen)
}

// assertPerfectMaze verifies the spanning-tree property: exactly
// openCells−1 open edges and every open cell reachable from every other.
func assertPerfectMaze(t *testing.T, g *grid.Grid) {
	t.Helper()
	cells := openCells(g)
	require.NotEmpty(t, cells, "maze carved nothing")
	require.Equal(t, len(cells)-1, openEdges(g),
		"a perfect maze has exactly openCells-1 open edges")
	require.Equal(t, len(cells), floodSize(g, cells[0]),
		"every open cell must be reachable from every other")
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestGenerate_NilGrid(t *testing.T) {
	require.ErrorIs(t, maze.Generate(nil), maze.ErrNilGrid)
}

func TestGenerate_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 9}, {9, 2}} {
		g, err := grid.New(dims[0], dims[1])
		require.NoError(t, err)
		err = maze.Generate(g)
		if !errors.Is(err, maze.ErrGridTooSmall) {
			t.Errorf("Generate on %d×%d error = %v; want ErrGridTooSmall", dims[0], dims[1], err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Spanning-tree property, both strategies.
// ------------------------------------------------------------------------

// TestGenerate_PerfectMaze checks the spanning-tree property across odd
// and even dimensions for both carving strategies.
func TestGenerate_PerfectMaze(t *testing.T) {
	dims := [][2]int{{9, 9}, {15, 21}, {10, 14}, {3, 3}, {5, 32}}
	algos := map[string]maze.Algorithm{
		"Backtracker": maze.Backtracker,
		"Prim":        maze.Prim,
	}
	for name, algo := range algos {
		for _, d := range dims {
			t.Run(fmt.Sprintf("%s_%dx%d", name, d[0], d[1]), func(t *testing.T) {
				g, err := grid.New(d[0], d[1])
				require.NoError(t, err)
				require.NoError(t, maze.Generate(g, maze.WithSeed(17), maze.WithAlgorithm(algo)))
				assertPerfectMaze(t, g)
			})
		}
	}
}

// TestGenerate_Deterministic: a fixed seed reproduces the layout.
func TestGenerate_Deterministic(t *testing.T) {
	first, _ := grid.New(17, 17)
	second, _ := grid.New(17, 17)
	require.NoError(t, maze.Generate(first, maze.WithSeed(123)))
	require.NoError(t, maze.Generate(second, maze.WithSeed(123)))
	require.Equal(t, first.String(), second.String())

	third, _ := grid.New(17, 17)
	require.NoError(t, maze.Generate(third, maze.WithSeed(124)))
	require.NotEqual(t, first.String(), third.String(), "different seeds should differ on a 17×17 board")

	// WithRand over the same seed is equivalent to WithSeed
	fourth, _ := grid.New(17, 17)
	require.NoError(t, maze.Generate(fourth, maze.WithRand(rand.New(rand.NewSource(123)))))
	require.Equal(t, first.String(), fourth.String())
}

// ------------------------------------------------------------------------
// 3. Endpoint post-condition and searchability.
// ------------------------------------------------------------------------

// TestGenerate_ForcesEndpointsOpen: previously set start/goal cells are
// reopened regardless of the carved topology.
func TestGenerate_ForcesEndpointsOpen(t *testing.T) {
	g, _ := grid.New(11, 11)
	start := grid.Coord{Row: 0, Col: 0} // border cell: always a wall after carving
	goal := grid.Coord{Row: 10, Col: 10}
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.SetGoal(goal))

	require.NoError(t, maze.Generate(g, maze.WithSeed(8)))
	require.False(t, g.IsWall(start.Row, start.Col), "start cell must be forced open")
	require.False(t, g.IsWall(goal.Row, goal.Col), "goal cell must be forced open")
}

// TestGenerate_RoomToRoomSolvable: any two rooms of a perfect maze are
// connected by exactly one simple path, so A* must find one.
func TestGenerate_RoomToRoomSolvable(t *testing.T) {
	g, _ := grid.New(21, 21)
	require.NoError(t, maze.Generate(g, maze.WithSeed(31)))

	res, err := astar.FindPath(g, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 19, Col: 19})
	require.NoError(t, err)
	require.Equal(t, pathfind.Found, res.Outcome)
	// in a tree the found path is the unique simple path, hence minimal
	require.Equal(t, res.Cost, float64(len(res.Path)-1))
}
