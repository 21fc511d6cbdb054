// Package gridgraph treats a rectangular lattice of unit-distance cells as an
// undirected graph whose orthogonal edges can be blocked and unblocked at
// runtime, and finds shortest paths across it.
//
// What:
//
//   - GridGraph holds fixed Width×Height dimensions and an edge-block registry.
//   - BlockEdge / UnblockEdge toggle individual lattice edges (idempotent).
//   - Neighbors lists the reachable orthogonal neighbors of a cell.
//   - FindPath runs Dijkstra (unit weights) and returns one shortest path.
//   - Stepper drives the same search one finalized node at a time.
//   - Regions labels the connected regions under the current blocks.
//
// Why:
//
//   - Maze and board editors: let a user wall off edges and ask for a route.
//   - Teaching tools: animate the frontier with Stepper.
//
// Node identity:
//
//	Every cell (x,y) maps to the arena index y*Width + x. Distance, parent and
//	frontier tables are slices indexed by it; the canonical string form
//	"(x,y)" is only used for edge keys and display.
//
// Tie-break:
//
//	When several frontier nodes share the minimum distance, the one with the
//	lowest arena index (lowest y, then lowest x) is finalized first. Searches
//	are therefore fully deterministic: on an open 3×3 grid,
//	FindPath((0,0),(2,2)) is always (0,0) (1,0) (2,0) (2,1) (2,2).
//
// Complexity:
//
//   - FindPath: O((V+E) log V) time, O(V) memory, V = Width×Height, E ≤ 2V.
//   - Neighbors, BlockEdge, UnblockEdge, IsBlocked: O(1).
//   - Regions: O(V) time and memory.
//
// Concurrency:
//
//	A GridGraph is safe for concurrent use. Searches hold a read lock for
//	their whole duration and registry mutations take the write lock, so a
//	block change never lands in the middle of a search. BlockEdges and
//	ReplaceBlocked apply a whole batch under one write lock and one
//	revision bump. Searches with an OnFinalize hook run on a copy of the
//	registry instead, so the hook may call back into the GridGraph.
//
// Errors:
//
//   - ErrInvalidArgument: bad dimensions, out-of-bounds or identical
//     endpoints, or a bad option value.
//
// "No path" is not an error: FindPath returns an empty slice and a nil error.
package gridgraph
