// Package pathfind is the seam between the grid topology and the search
// strategies: one small contract every algorithm variant implements, one
// tagged result shape every consumer reads.
//
// What:
//
//   - Algorithm — the polymorphic search contract: FindPath plus the
//     ExploredNodes trace query. Variants in this repository: astar.AStar
//     (informed best-first) and bfs.BFS (unweighted breadth-first); a
//     Dijkstra variant is astar with the Zero heuristic.
//   - Result — outcome tag, inclusive start→goal Path, total Cost, the
//     finalize-order Explored trace, and the run's Scratch.
//   - Scratch / NodeState — per-run search fields (g, h, f, parent,
//     visit order, explored), kept off the Grid so the topology stays
//     read-only during a search.
//
// Why a tagged outcome:
//
//	The classic contract returns an empty path both for invalid endpoints
//	and for an unreachable goal, which callers cannot tell apart. Result
//	keeps the empty-path behavior and adds Outcome (Found / NoPath /
//	BadEndpoints) so the two are distinguishable without turning a normal
//	algorithm outcome into an error.
//
// Why scratch lives here and not on the Grid:
//
//	Bundling transient search fields into the topology forces searches to
//	serialize on one board. A per-run Scratch makes the Grid shareable:
//	build once, search many times, even from several goroutines — as long
//	as nobody mutates walls, weights or endpoints mid-run.
//
// Errors:
//
//   - ErrNilGrid: FindPath received a nil *grid.Grid.
package pathfind
