// Package scc computes strongly connected components of a core.Digraph
// with Tarjan's low-link algorithm, plus the condensation digraph.
//
// What
//
//   - StronglyConnected: one depth-first pass assigning discovery
//     indices and low-links; a vertex whose low-link equals its own
//     index roots a component, popped off the shared stack in one go.
//     The outer driver covers every vertex 0..Order, so disconnected
//     digraphs are handled without a designated start.
//   - Condensation: the component DAG (one vertex per SCC, arcs between
//     distinct components deduplicated) plus the vertex-to-component
//     index map.
//
// Output shape
//
//	Components are returned as ascending-sorted vertex slices. The
//	slice-of-components order is root-completion order; callers must
//	not rely on any cross-component ordering. Components partition the
//	vertex set: every vertex appears in exactly one.
//
// Complexity (V = order, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for index/low-link/on-stack state and the stack.
//
// Resource note
//
//	The recursion depth is bounded by the longest simple path; digraphs
//	millions of vertices deep can exhaust the goroutine stack. Go grows
//	goroutine stacks dynamically (up to the runtime limit), which pushes
//	that boundary far out, but an explicit-stack rewrite is the escape
//	hatch if it is ever hit.
//
// Errors
//
//   - ErrNilDigraph if the digraph is nil.
package scc
