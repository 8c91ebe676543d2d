// Package grid provides the dense lattice topology every gridpath search
// and generator operates on.
//
// What:
//
//   - Grid wraps a fixed rows×cols matrix of cells with a wall flag and a
//     terrain weight (default 1.0) per cell, plus optional start/goal endpoints.
//   - Neighbors answers the passable 4-neighborhood in the fixed order
//     up, down, left, right — the determinism anchor for every search.
//   - MovementCost prices a step as the destination cell's weight.
//   - RandomWalls scatters walls by an independent per-cell Bernoulli trial.
//
// Why:
//
//   - Pathfinding benchmarks and visualizers: one mutable board, many searches.
//   - Game maps: terrain cost modeling with impassable cells.
//   - Maze workbenches: the maze package rewrites this grid's walls in place.
//
// Fail-closed boundary: IsWall reports true and MovementCost reports +Inf for
// any out-of-bounds coordinate, so passability tests need no bounds pre-check.
//
// Complexity:
//
//   - New, ResetAll, RandomWalls, String: O(rows×cols).
//   - All point queries and mutations (IsWall, SetWall, Neighbors, …): O(1).
//
// Options:
//
//   - WithSeed / WithRand: deterministic RandomWalls layouts.
//
// Errors:
//
//   - ErrBadDimensions: non-positive rows or cols at construction.
//   - ErrOutOfBounds:   SetStart/SetGoal outside the lattice.
//   - ErrWallEndpoint:  SetStart/SetGoal on a wall cell.
//   - ErrBadDensity:    RandomWalls density outside [0,1].
//
// Searches never mutate the Grid — their scratch lives in pathfind.Scratch —
// but walls, weights and endpoints must not be mutated concurrently with an
// in-flight search on the same instance.
package grid
