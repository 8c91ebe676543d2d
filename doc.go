// Package gridpath is your in-memory toolkit for grid-based pathfinding —
// from the lattice model itself to pluggable search strategies and maze
// synthesis.
//
// 🚀 What is gridpath?
//
//	A small, focused, pure-Go library that brings together:
//		• Topology: a dense rows×cols lattice with walls, terrain weights and endpoints
//		• Search: A* with a Manhattan heuristic and a lazy-deletion frontier
//		• Variants: BFS (and Dijkstra via a zero heuristic) behind one contract
//		• Synthesis: perfect-maze carving (recursive backtracker & randomized Prim)
//
// ✨ Why choose gridpath?
//
//   - Deterministic – pinned neighbor order and frontier tie-breaks, seeded RNG
//   - Honest results – tagged outcomes (Found / NoPath / BadEndpoints), never panics
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – any strategy implementing pathfind.Algorithm plugs in unchanged
//
// Everything is organized under five subpackages:
//
//	grid/     — the Grid lattice: walls, weights, start/goal, neighbor queries
//	pathfind/ — the Algorithm contract, tagged Result, and per-run search scratch
//	astar/    — informed best-first search (A*), the primary variant
//	bfs/      — unweighted breadth-first variant of the same contract
//	maze/     — perfect-maze generators operating on a Grid in place
//
// Quick ASCII example (S=start, G=goal, #=wall, *=path):
//
//	S * . # .
//	# * . # .
//	# * * * *
//	# # # # *
//	. . . # G
//
// Searches read the grid and write only their own per-run scratch, so several
// searches may share one read-only Grid; mutating a Grid concurrently with an
// in-flight search on the same instance is the caller's responsibility.
//
// Begin with grid.New, stamp endpoints, then call astar.FindPath.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
