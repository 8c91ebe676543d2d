package maze_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// benchGenerate measures carving a 255×255 maze with the given strategy.
// Complexity: O(rows×cols).
func benchGenerate(b *testing.B, algo maze.Algorithm) {
	const n = 255
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = maze.Generate(g, maze.WithSeed(int64(i)), maze.WithAlgorithm(algo)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Backtracker(b *testing.B) { benchGenerate(b, maze.Backtracker) }

func BenchmarkGenerate_Prim(b *testing.B) { benchGenerate(b, maze.Prim) }
