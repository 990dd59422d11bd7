// Package paths reconstructs walks from predecessor trees.
//
// What
//
//	A Tree maps each vertex to the vertex it was first reached from
//	during a traversal (None for sources and unreached vertices). bfs
//	and dijkstra produce Trees; Search and SearchBy walk the predecessor
//	chain from a start vertex until a target (or a predicate match) is
//	found, with cycle detection so hand-built trees cannot loop forever.
//
// Why
//
//	Shortest-path queries usually end in "give me the actual route";
//	storing one predecessor per vertex is the O(V) answer, and the walk
//	back is O(path length).
//
// Edge cases
//
//   - The start vertex itself satisfying the target short-circuits to a
//     single-element path, no traversal.
//   - A chain ending in None before the target is a miss, not an error.
//   - A cycle in the tree terminates the walk and reports a miss.
package paths
