// Package bfs_test contains unit tests for the breadth-first variant of
// the pathfind.Algorithm contract.
package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// TestFindPath_NilGrid verifies the shared nil-grid sentinel.
func TestFindPath_NilGrid(t *testing.T) {
	if _, err := bfs.FindPath(nil, grid.Coord{}, grid.Coord{}); err != pathfind.ErrNilGrid {
		t.Fatalf("error = %v; want ErrNilGrid", err)
	}
}

// TestFindPath_Basic checks a simple board: shortest move count, hop
// counts in scratch G, and the contract's Path shape.
func TestFindPath_Basic(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.SetWall(1, 1, true)
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 2, Col: 2}

	res, err := bfs.FindPath(g, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != pathfind.Found {
		t.Fatalf("Outcome = %v; want Found", res.Outcome)
	}
	if len(res.Path) != 5 || res.Cost != 4 {
		t.Errorf("path len=%d cost=%v; want len=5 cost=4", len(res.Path), res.Cost)
	}
	if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
		t.Errorf("path endpoints = %v…%v; want %v…%v", res.Path[0], res.Path[len(res.Path)-1], start, goal)
	}
	// hop counts: every path step increments G by exactly one
	for i, c := range res.Path {
		st, ok := res.States.StateAt(c.Row, c.Col)
		if !ok || st.G != float64(i) {
			t.Errorf("G at path[%d]=%v is %v; want %d", i, c, st.G, i)
		}
	}
}

// TestFindPath_IgnoresWeights: BFS minimizes moves, not summed movement
// cost — the weighted corridor is taken because it is fewer moves.
func TestFindPath_IgnoresWeights(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.SetWeight(1, 1, 100)

	res, err := bfs.FindPath(g, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != pathfind.Found || len(res.Path) != 3 {
		t.Fatalf("Outcome=%v len=%d; want Found with the 3-cell direct path", res.Outcome, len(res.Path))
	}
}

// TestFindPath_Outcomes distinguishes BadEndpoints from NoPath.
func TestFindPath_Outcomes(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.SetWall(0, 1, true)
	g.SetWall(1, 0, true)
	g.SetWall(1, 1, true)

	// (0,0) is boxed in: reachable side exhausted
	res, err := bfs.FindPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != pathfind.NoPath || len(res.Path) != 0 {
		t.Errorf("boxed-in outcome = %v; want NoPath with empty path", res.Outcome)
	}

	// walled endpoint: no search at all
	res, err = bfs.FindPath(g, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != pathfind.BadEndpoints || len(res.Explored) != 0 {
		t.Errorf("walled start outcome = %v explored=%d; want BadEndpoints, 0", res.Outcome, len(res.Explored))
	}
}

// TestExploredTrace verifies dequeue-order uniqueness, non-decreasing
// hop counts, and the ExploredNodes query.
func TestExploredTrace(t *testing.T) {
	g, _ := grid.New(6, 6)
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 5, Col: 5}

	b := bfs.New()
	if got := b.ExploredNodes(); len(got) != 0 {
		t.Fatalf("trace before any run = %v; want empty", got)
	}
	res, err := b.FindPath(g, start, goal)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[grid.Coord]bool)
	prevHops := -1.0
	for _, c := range res.Explored {
		if seen[c] {
			t.Fatalf("coordinate %v dequeued twice", c)
		}
		seen[c] = true
		st, _ := res.States.StateAt(c.Row, c.Col)
		if st.G < prevHops {
			t.Fatalf("hop counts not non-decreasing at %v", c)
		}
		prevHops = st.G
	}
	if len(b.ExploredNodes()) != len(res.Explored) {
		t.Error("ExploredNodes disagrees with the returned trace")
	}
}

// TestWithContext_Canceled verifies cooperative cancellation.
func TestWithContext_Canceled(t *testing.T) {
	g, _ := grid.New(10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bfs.FindPath(g, grid.Coord{}, grid.Coord{Row: 9, Col: 9}, bfs.WithContext(ctx)); err != context.Canceled {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
}
