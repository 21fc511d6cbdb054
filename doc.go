// Package gridpath is a shortest-path playground on a rectangular grid
// whose lattice edges can be blocked and unblocked at run time.
//
// 🚀 What is gridpath?
//
//	A thread-safe grid engine plus the pieces around it:
//		• Engine: 4-connected grid, edge block registry, unit-weight Dijkstra
//		• Stepper: the same search one finalized cell at a time
//		• Terrain: noise-generated walls, deterministic per seed
//		• Sessions: uuid-keyed boards with a revision-keyed path cache,
//		  Prometheus metrics and OpenTelemetry spans
//		• Front ends: ASCII canvas and a tcell TUI
//
// ✨ Why gridpath?
//
//   - Deterministic: equal-distance ties resolve in row-major order
//   - Safe: searches hold a read lock, edits wait for them
//   - Observable: slog events, search metrics and spans per query
//
// Layout:
//
//	gridgraph/  Node, Edge, GridGraph, FindPath, Stepper, Regions
//	terrain/    opensimplex wall generation
//	render/     canvas layout and ASCII output
//	session/    Store, Session, path cache, metrics, tracing
//	tui/        interactive tcell front end
//	cmd/gridpath the command
//
// Quick ASCII example (3×3, edge (0,1)–(1,1) blocked):
//
//	S * *
//
//	.|. *
//
//	. . E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
