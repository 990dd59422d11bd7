// Package johnson enumerates the elementary circuits (simple directed
// cycles) of a digraph with Johnson's 1975 algorithm.
//
// What
//
//	For each anchor vertex s in increasing order, the digraph is
//	restricted to vertices >= s, decomposed into strongly connected
//	components (package scc), and the component anchored at s is
//	searched with the classic circuit/block/unblock recursion: a vertex
//	joining the candidate path is blocked; closing an arc back to s
//	records a copy of the path as a circuit; vertices that led to a
//	circuit are unblocked transitively through the block-dependency
//	sets b[v], which is what keeps the search from re-walking dead
//	branches.
//
// Determinism
//
//	Circuits are emitted anchored at their minimum vertex, anchors
//	ascending, and within one anchor in the recursive exploration order
//	induced by the digraph's OutNeighbors enumeration. Over an
//	AdjacencyList the full output is reproducible and tests may assert
//	exact circuit lists.
//
// Resource characteristics
//
//	The number of elementary circuits is worst-case exponential in the
//	order (dense digraphs), so output size, not the algorithm, dominates
//	the cost: O((V + E) * (c + 1)) for c circuits. CircuitsCtx checks
//	the context between anchors so a runaway enumeration can be
//	abandoned.
//
// Errors
//
//   - ErrNilDigraph     if the digraph is nil.
//   - context errors    from CircuitsCtx.
package johnson
