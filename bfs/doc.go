// Package bfs provides breadth-first search over a core.Digraph,
// yielding vertices in non-decreasing distance (arc count) from a set
// of source vertices.
//
// What
//
//   - Iterator: a lazy, pull-based traversal. Each Next call pops one
//     vertex from the FIFO frontier, enqueues its unvisited out-neighbors
//     at depth+1, and yields a Step{Vertex, Depth}. Once the frontier is
//     empty the iterator is exhausted and Next reports false forever.
//   - Distances: drains the iterator into a dense depth array
//     (Unreachable for vertices never discovered).
//   - Predecessors: drains the iterator and returns the predecessor tree
//     for use with the paths package.
//   - Traverse: a run-to-completion driver with functional options
//     (context cancellation, depth limit, neighbor filtering, hooks).
//
// Invariants
//
//   - A vertex is enqueued at most once; sources are pre-marked visited
//     before the first Next call.
//   - Yielded depths are non-decreasing; within one depth, order follows
//     discovery order (parent pop order, then out-neighbor order).
//   - With zero sources the iterator is exhausted immediately.
//
// Complexity (V = order, E = arcs reachable from the sources)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for frontier, visited array, predecessor tree.
//
// Usage
//
//	it, err := bfs.New(d, 0)
//	if err != nil { ... }
//	for step, ok := it.Next(); ok; step, ok = it.Next() {
//	    fmt.Println(step.Vertex, step.Depth)
//	}
//
// Errors
//
//   - ErrNilDigraph        if the digraph is nil.
//   - ErrSourceOutOfRange  if a source vertex is outside [0, Order).
//   - ErrOptionViolation   if Traverse receives an invalid option.
//   - Wrapped hook errors from WithOnVisit.
//
// Failure semantics: a malformed digraph whose OutNeighbors reports an
// index >= Order panics on the visited-array access. That is a contract
// violation by the digraph implementation, not a recoverable state.
package bfs
