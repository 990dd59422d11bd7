// Package dfs provides depth-first search over a core.Digraph: a lazy
// pre-order iterator plus a recursive Traverse driver with hooks.
//
// What
//
//   - Iterator: pull-based LIFO traversal. Each Next pops the top of the
//     stack and pushes its unvisited out-neighbors, yielding
//     Step{Vertex, Depth}.
//   - Distances: drains the iterator into a dense depth array.
//   - Traverse: recursive pre-order driver with functional options
//     (context, depth limit, neighbor filtering, pre-order hook,
//     full-forest mode).
//
// Duplicate-handling discipline
//
//	All variants in this package check the visited array BEFORE pushing:
//	a vertex enters the stack at most once, is marked visited at push
//	time, and Next therefore always yields a fresh vertex or reports
//	exhaustion. There is no "popped an already-visited vertex" path.
//	Depth is the depth at first push.
//
// Ordering
//
//	Out-neighbors are pushed in reverse enumeration order, so the first
//	out-neighbor of the most recent vertex is explored first. The exact
//	sequence depends on the digraph's OutNeighbors order; callers should
//	rely only on the reachability and depth properties.
//
// Complexity (V = order, E = arcs reachable from the sources)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and visited array.
//
// Errors
//
//   - ErrNilDigraph        if the digraph is nil.
//   - ErrSourceOutOfRange  if a source vertex is outside [0, Order).
//   - ErrOptionViolation   for invalid Traverse options.
//   - context.Canceled / hook errors from Traverse.
package dfs
