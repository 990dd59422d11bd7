// Package digraph is a library of classic algorithms over directed
// graphs with dense integer vertices.
//
// 🚀 What is digraph?
//
//	A small, deterministic toolkit for directed graphs:
//		• Core model: capability interfaces + adjacency-list backends
//		• Traversals: BFS, DFS (lazy iterators and hook-driven runs)
//		• Shortest paths: Dijkstra with distance caps & impassable arcs
//		• Path reconstruction: predecessor trees (paths.Tree)
//		• Components: Tarjan SCC + condensation DAG
//		• Circuits: Johnson elementary circuit enumeration
//		• Export: Graphviz DOT marshalling & SVG rendering
//
// ✨ Why choose digraph?
//
//   - Deterministic – sorted adjacency, reproducible outputs, golden-testable
//   - Polymorphic – algorithms consume the capabilities they need, nothing more
//   - Lazy or eager – step iterators for streaming, Traverse/Run for batch
//   - Extensible – hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized under focused subpackages:
//
//	core/     — Digraph capability interfaces, adjacency-list backends
//	builder/  — deterministic generators (Path, Circuit, Cycle, Star, Wheel, Complete)
//	paths/    — predecessor trees & path reconstruction
//	bfs/      — breadth-first search
//	dfs/      — depth-first search
//	dijkstra/ — non-negative shortest paths
//	scc/      — strongly connected components & condensation
//	johnson/  — elementary circuit enumeration
//	dot/      — Graphviz DOT export & SVG rendering
//
// Quick ASCII example:
//
//	    0──▶1
//	    ▲   │
//	    │   ▼
//	    3◀──2
//
//	is Circuit(4): the one-way ring with a single elementary circuit.
//
// The cmd/digraph CLI runs every algorithm over arc-list or TOML
// digraph files.
//
//	go get github.com/katalvlaran/digraph
package digraph
