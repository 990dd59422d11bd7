// Package core declares the capability interfaces shared by every
// algorithm package, together with the sentinel errors of the module.
package core

import "errors"

// Sentinel errors for core digraph operations.
var (
	// ErrNilDigraph indicates a nil digraph was passed to a constructor.
	ErrNilDigraph = errors.New("core: digraph is nil")

	// ErrVertexOutOfRange indicates an operation referenced a vertex
	// index outside [0, Order).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates a negative arc weight where only
	// non-negative weights are supported.
	ErrNegativeWeight = errors.New("core: negative arc weight")
)

// Arc is a weighted out-arc: the head vertex it points to plus its weight.
type Arc struct {
	// Head is the destination vertex of the arc.
	Head int

	// Weight is the cost of traversing the arc.
	Weight int64
}

// WeightedArc is a fully qualified weighted arc (tail, head, weight),
// as produced by WeightedArcLister.
type WeightedArc struct {
	Tail   int
	Head   int
	Weight int64
}

// Digraph is the minimal read surface consumed by traversal algorithms:
// a vertex count plus out-neighbor enumeration.
//
// OutNeighbors must return the successors of u in a deterministic order;
// callers must not mutate the returned slice. Calling OutNeighbors with
// u >= Order() panics.
type Digraph interface {
	// Order returns the number of vertices.
	Order() int

	// OutNeighbors returns the successors of u.
	OutNeighbors(u int) []int
}

// WeightedDigraph extends Digraph with weighted out-neighbor enumeration,
// required by the dijkstra package.
type WeightedDigraph interface {
	Digraph

	// OutNeighborsWeighted returns the out-arcs of u with their weights.
	OutNeighborsWeighted(u int) []Arc
}

// Subgrapher extends Digraph with vertex-induced subgraph construction,
// required by the johnson package.
//
// Subgraph returns a digraph of the same order containing exactly the
// arcs (u, v) of the receiver for which keep(u) && keep(v). Excluded
// vertices keep their index and become isolated, so vertex identity is
// stable across filtering.
type Subgrapher interface {
	Digraph

	// Subgraph returns the subgraph induced by the vertices satisfying keep.
	Subgraph(keep func(v int) bool) Subgrapher
}

// ArcLister enumerates every arc of a digraph as (tail, head) pairs.
// Optional capability used by the dot exporter.
type ArcLister interface {
	// Arcs returns all arcs as {tail, head} pairs.
	Arcs() [][2]int
}

// WeightedArcLister enumerates every arc with its weight. Optional
// capability used by dijkstra's negative-weight pre-scan and the dot
// exporter.
type WeightedArcLister interface {
	// ArcsWeighted returns all arcs with weights.
	ArcsWeighted() []WeightedArc
}
