// Package dot exports digraphs to Graphviz DOT and renders DOT to SVG.
//
// What
//
//	Marshal walks a digraph and emits a deterministic DOT document: one
//	declaration per vertex (so isolated vertices stay visible) followed
//	by one line per arc. If the digraph implements
//	core.WeightedArcLister, each arc carries its weight as an edge
//	label; a plain core.ArcLister is used next, and otherwise arcs are
//	gathered from OutNeighbors.
//
//	RenderSVG feeds a DOT document through the embedded Graphviz layout
//	engine and returns the SVG bytes.
//
// Determinism
//
//	Vertices are declared in index order and arcs in the digraph's own
//	enumeration order, so marshalling the same digraph twice produces
//	identical bytes and tests may compare against golden strings.
//
// Errors
//
//   - ErrNilDigraph       if the digraph is nil.
//   - wrapped render errors from the Graphviz engine.
package dot
