package core

import (
	"fmt"
	"sort"
)

// AdjacencyList is a dense unweighted digraph: one sorted successor
// slice per vertex. The zero vertex set is allowed (Order() == 0).
//
// Out-neighbor order is ascending, so every algorithm run over an
// AdjacencyList is fully deterministic.
type AdjacencyList struct {
	adj [][]int
}

// NewAdjacencyList returns an empty digraph with the given number of
// vertices and no arcs. Panics if order is negative (programming error).
func NewAdjacencyList(order int) *AdjacencyList {
	if order < 0 {
		panic(fmt.Sprintf("core: negative order %d", order))
	}

	return &AdjacencyList{adj: make([][]int, order)}
}

// Order returns the number of vertices.
func (d *AdjacencyList) Order() int { return len(d.adj) }

// Vertices returns the full vertex set 0..Order().
func (d *AdjacencyList) Vertices() []int {
	vs := make([]int, len(d.adj))
	for v := range vs {
		vs[v] = v
	}

	return vs
}

// AddArc inserts the arc (u, v), keeping u's successor slice sorted.
// Parallel arcs are deduplicated silently. Self-loops are permitted.
// Returns ErrVertexOutOfRange if either endpoint is outside [0, Order).
func (d *AdjacencyList) AddArc(u, v int) error {
	if u < 0 || u >= len(d.adj) {
		return fmt.Errorf("%w: tail %d (order %d)", ErrVertexOutOfRange, u, len(d.adj))
	}
	if v < 0 || v >= len(d.adj) {
		return fmt.Errorf("%w: head %d (order %d)", ErrVertexOutOfRange, v, len(d.adj))
	}

	row := d.adj[u]
	i := sort.SearchInts(row, v)
	if i < len(row) && row[i] == v {
		return nil // already present
	}
	row = append(row, 0)
	copy(row[i+1:], row[i:])
	row[i] = v
	d.adj[u] = row

	return nil
}

// OutNeighbors returns the successors of u in ascending order.
// The returned slice is shared state; callers must not mutate it.
func (d *AdjacencyList) OutNeighbors(u int) []int { return d.adj[u] }

// HasArc reports whether the arc (u, v) exists. Returns false for
// out-of-range endpoints instead of panicking, so membership tests on
// arbitrary pairs stay cheap.
func (d *AdjacencyList) HasArc(u, v int) bool {
	if u < 0 || u >= len(d.adj) {
		return false
	}
	row := d.adj[u]
	i := sort.SearchInts(row, v)

	return i < len(row) && row[i] == v
}

// Size returns the number of arcs.
func (d *AdjacencyList) Size() int {
	var n int
	for _, row := range d.adj {
		n += len(row)
	}

	return n
}

// Arcs returns every arc as a {tail, head} pair, tail-major ascending.
func (d *AdjacencyList) Arcs() [][2]int {
	out := make([][2]int, 0, d.Size())
	for u, row := range d.adj {
		for _, v := range row {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Subgraph returns the vertex-induced subgraph keeping exactly the arcs
// whose both endpoints satisfy keep. The order is unchanged; excluded
// vertices become isolated.
func (d *AdjacencyList) Subgraph(keep func(v int) bool) Subgrapher {
	sub := NewAdjacencyList(len(d.adj))
	for u, row := range d.adj {
		if !keep(u) {
			continue
		}
		for _, v := range row {
			if keep(v) {
				sub.adj[u] = append(sub.adj[u], v) // row stays sorted
			}
		}
	}

	return sub
}
