// Package dijkstra implements Dijkstra's shortest-path algorithm over
// a core.WeightedDigraph with non-negative int64 arc weights.
//
// What
//
//   - Iterator: lazy greedy search. Each Next pops the minimum-distance
//     live heap entry, relaxes its out-arcs, and yields
//     Step{Vertex, Dist}; vertices are yielded in non-decreasing final
//     distance order, each exactly once.
//   - Distances / Predecessors: drain the iterator into a dense distance
//     array (Unreachable sentinel) or a predecessor tree.
//   - Run: run-to-completion driver with functional options
//     (WithMaxDistance, WithInfEdgeThreshold, WithReturnPath) and a
//     fail-fast negative-weight pre-scan when the digraph implements
//     core.WeightedArcLister.
//
// Lazy decrease-key
//
//	Improving a vertex's distance pushes a fresh heap entry; the stale
//	entry stays in the heap and is skipped at pop time (popped dist
//	greater than the vertex's current best). A stale entry is never
//	yielded as a Step: Next loops internally until a live entry or an
//	empty heap. Relaxing from a stale entry can never improve any
//	distance, so skipping before relaxation is sound.
//
// Numeric semantics
//
//	Weights and distances are int64. Unreached vertices hold
//	Unreachable (math.MaxInt64). Overflow of dist+weight is not guarded;
//	callers feeding near-MaxInt64 weights are on their own. Negative
//	weights are unsupported: Run pre-scans and fails fast where it can,
//	and the Iterator records ErrNegativeWeight via Err() if one slips
//	through during relaxation.
//
// Complexity (V = order, E = arcs)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap holds stale duplicates in the worst case)
//
// Errors
//
//   - ErrNilDigraph        if the digraph is nil.
//   - ErrSourceOutOfRange  if a source vertex is outside [0, Order).
//   - ErrNoSource          if Run is invoked without any source.
//   - ErrNegativeWeight    if a negative arc weight is detected.
//   - ErrBadMaxDistance    if WithMaxDistance receives a negative cap.
//   - ErrBadInfThreshold   if WithInfEdgeThreshold receives a non-positive value.
package dijkstra
