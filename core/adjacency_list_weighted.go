package core

import (
	"fmt"
	"sort"
)

// AdjacencyListWeighted is a dense weighted digraph: one sorted out-arc
// slice per vertex. Negative weights are stored as-is; whether they are
// acceptable is decided by the consuming algorithm (dijkstra rejects
// them, a future bellman-ford would not).
type AdjacencyListWeighted struct {
	adj [][]Arc
}

// NewAdjacencyListWeighted returns an empty weighted digraph with the
// given number of vertices. Panics if order is negative.
func NewAdjacencyListWeighted(order int) *AdjacencyListWeighted {
	if order < 0 {
		panic(fmt.Sprintf("core: negative order %d", order))
	}

	return &AdjacencyListWeighted{adj: make([][]Arc, order)}
}

// Order returns the number of vertices.
func (d *AdjacencyListWeighted) Order() int { return len(d.adj) }

// Vertices returns the full vertex set 0..Order().
func (d *AdjacencyListWeighted) Vertices() []int {
	vs := make([]int, len(d.adj))
	for v := range vs {
		vs[v] = v
	}

	return vs
}

// AddArcWeighted inserts the arc (u, v) with weight w, keeping u's
// out-arc slice sorted by head. Re-adding an existing arc overwrites
// its weight. Returns ErrVertexOutOfRange for invalid endpoints.
func (d *AdjacencyListWeighted) AddArcWeighted(u, v int, w int64) error {
	if u < 0 || u >= len(d.adj) {
		return fmt.Errorf("%w: tail %d (order %d)", ErrVertexOutOfRange, u, len(d.adj))
	}
	if v < 0 || v >= len(d.adj) {
		return fmt.Errorf("%w: head %d (order %d)", ErrVertexOutOfRange, v, len(d.adj))
	}

	row := d.adj[u]
	i := sort.Search(len(row), func(i int) bool { return row[i].Head >= v })
	if i < len(row) && row[i].Head == v {
		row[i].Weight = w

		return nil
	}
	row = append(row, Arc{})
	copy(row[i+1:], row[i:])
	row[i] = Arc{Head: v, Weight: w}
	d.adj[u] = row

	return nil
}

// OutNeighborsWeighted returns the out-arcs of u in ascending head order.
// The returned slice is shared state; callers must not mutate it.
func (d *AdjacencyListWeighted) OutNeighborsWeighted(u int) []Arc { return d.adj[u] }

// OutNeighbors returns the successor vertices of u in ascending order.
// A fresh slice is allocated on each call; prefer OutNeighborsWeighted
// in hot loops.
func (d *AdjacencyListWeighted) OutNeighbors(u int) []int {
	row := d.adj[u]
	heads := make([]int, len(row))
	for i, a := range row {
		heads[i] = a.Head
	}

	return heads
}

// Size returns the number of arcs.
func (d *AdjacencyListWeighted) Size() int {
	var n int
	for _, row := range d.adj {
		n += len(row)
	}

	return n
}

// ArcsWeighted returns every arc with its weight, tail-major ascending.
func (d *AdjacencyListWeighted) ArcsWeighted() []WeightedArc {
	out := make([]WeightedArc, 0, d.Size())
	for u, row := range d.adj {
		for _, a := range row {
			out = append(out, WeightedArc{Tail: u, Head: a.Head, Weight: a.Weight})
		}
	}

	return out
}

// Arcs returns every arc as a {tail, head} pair, weights dropped.
func (d *AdjacencyListWeighted) Arcs() [][2]int {
	out := make([][2]int, 0, d.Size())
	for u, row := range d.adj {
		for _, a := range row {
			out = append(out, [2]int{u, a.Head})
		}
	}

	return out
}

// Subgraph returns the vertex-induced weighted subgraph; same-order
// semantics as AdjacencyList.Subgraph.
func (d *AdjacencyListWeighted) Subgraph(keep func(v int) bool) Subgrapher {
	sub := NewAdjacencyListWeighted(len(d.adj))
	for u, row := range d.adj {
		if !keep(u) {
			continue
		}
		for _, a := range row {
			if keep(a.Head) {
				sub.adj[u] = append(sub.adj[u], a)
			}
		}
	}

	return sub
}
