// Package core defines the digraph capability interfaces and the dense
// adjacency-list representations the algorithm packages operate on.
//
// What
//
//   - Vertices are non-negative ints in [0, Order); identity is positional.
//   - Digraph is the minimal read surface every algorithm consumes:
//     Order() plus OutNeighbors(u).
//   - WeightedDigraph adds OutNeighborsWeighted(u) for shortest-path
//     algorithms over int64 arc weights.
//   - Subgrapher adds Subgraph(keep), producing a vertex-induced subgraph
//     of the same order (excluded vertices keep their index, lose their arcs).
//   - AdjacencyList and AdjacencyListWeighted are the concrete backends,
//     with sorted, deduplicated out-neighbor lists for deterministic
//     iteration order.
//
// Why
//
//	Algorithms (bfs, dfs, dijkstra, scc, johnson) accept these interfaces
//	instead of a concrete struct, so any representation that can report
//	its order and enumerate out-neighbors plugs in unchanged.
//
// Contract
//
//	All algorithm packages borrow a digraph read-only for the duration of
//	one run. Concurrent reads are safe on AdjacencyList once construction
//	is complete; interleaving AddArc with a running algorithm is not.
//	Passing a vertex index >= Order() to OutNeighbors panics via slice
//	indexing; this signals a programming error, not a runtime condition.
//
// Errors
//
//   - ErrVertexOutOfRange  if AddArc references a vertex >= Order().
//   - ErrNilDigraph        re-exported convenience for callers embedding core.
package core
