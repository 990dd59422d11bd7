package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// Iterator is a lazy Dijkstra run. Create with New, call Next until it
// reports false, then check Err for a negative-weight abort. Not safe
// for concurrent use.
type Iterator struct {
	d    core.WeightedDigraph
	dist []int64
	pred paths.Tree
	pq   minHeap
	err  error
}

// New returns an Iterator with dist 0 for every source and Unreachable
// elsewhere; the heap is seeded with one (0, source) entry per distinct
// source.
func New(d core.WeightedDigraph, sources ...int) (*Iterator, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}
	order := d.Order()
	it := &Iterator{
		d:    d,
		dist: make([]int64, order),
		pred: paths.NewTree(order),
		pq:   make(minHeap, 0, order),
	}
	for v := range it.dist {
		it.dist[v] = Unreachable
	}
	for _, s := range sources {
		if s < 0 || s >= order {
			return nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
		if it.dist[s] != 0 {
			it.dist[s] = 0
			it.pq = append(it.pq, heapItem{vertex: s})
		}
	}
	heap.Init(&it.pq)

	return it, nil
}

// Next pops heap entries until a live one is found (popped dist equal
// to the vertex's current best), relaxes its out-arcs, and yields the
// finalized step. Stale entries are skipped, never yielded. Reports
// false when the heap runs empty or a negative weight was encountered
// (see Err).
func (it *Iterator) Next() (Step, bool) {
	if it.err != nil {
		return Step{}, false
	}
	for it.pq.Len() > 0 {
		item := heap.Pop(&it.pq).(heapItem)
		if item.dist > it.dist[item.vertex] {
			continue // stale entry: a better distance was finalized
		}
		if err := it.relax(item); err != nil {
			it.err = err

			return Step{}, false
		}

		return Step{Vertex: item.vertex, Dist: item.dist}, true
	}

	return Step{}, false
}

// relax attempts to improve the distance of each out-neighbor of the
// popped vertex, pushing a fresh heap entry per improvement
// (lazy decrease-key).
func (it *Iterator) relax(item heapItem) error {
	for _, a := range it.d.OutNeighborsWeighted(item.vertex) {
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %d->%d weight=%d",
				ErrNegativeWeight, item.vertex, a.Head, a.Weight)
		}
		cand := item.dist + a.Weight
		if cand < it.dist[a.Head] {
			it.dist[a.Head] = cand
			it.pred[a.Head] = item.vertex
			heap.Push(&it.pq, heapItem{vertex: a.Head, dist: cand})
		}
	}

	return nil
}

// Err returns the sticky error recorded during iteration, nil unless a
// negative arc weight was observed.
func (it *Iterator) Err() error { return it.err }

// Distances drains the iterator and returns the dense shortest-distance
// array (Unreachable where never finalized). Consumes the iterator;
// check Err afterwards.
func (it *Iterator) Distances() []int64 {
	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}

	return it.dist
}

// Predecessors drains the iterator and returns the shortest-path
// predecessor tree. Consumes the iterator; check Err afterwards.
func (it *Iterator) Predecessors() paths.Tree {
	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}

	return it.pred
}

// Distances is a convenience wrapper: full run from sources, dense
// distance array out.
func Distances(d core.WeightedDigraph, sources ...int) ([]int64, error) {
	it, err := New(d, sources...)
	if err != nil {
		return nil, err
	}
	dist := it.Distances()

	return dist, it.Err()
}

// runner holds the mutable state of one Run execution.
type runner struct {
	d    core.WeightedDigraph
	opts Options
	dist []int64
	pred paths.Tree
	pq   minHeap
}

// Run computes shortest distances from the configured sources, honoring
// WithMaxDistance and WithInfEdgeThreshold. The predecessor tree is
// non-nil only with WithReturnPath.
//
// When the digraph implements core.WeightedArcLister, all arcs are
// pre-scanned and a negative weight fails fast with ErrNegativeWeight
// before any traversal work.
func Run(d core.WeightedDigraph, opts ...Option) ([]int64, paths.Tree, error) {
	if d == nil {
		return nil, nil, ErrNilDigraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if len(cfg.Sources) == 0 {
		return nil, nil, ErrNoSource
	}

	order := d.Order()
	for _, s := range cfg.Sources {
		if s < 0 || s >= order {
			return nil, nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
	}

	// Fail fast on negative weights when the representation can
	// enumerate its arcs.
	if lister, ok := d.(core.WeightedArcLister); ok {
		for _, a := range lister.ArcsWeighted() {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: arc %d->%d weight=%d",
					ErrNegativeWeight, a.Tail, a.Head, a.Weight)
			}
		}
	}

	r := &runner{
		d:    d,
		opts: cfg,
		dist: make([]int64, order),
		pq:   make(minHeap, 0, order),
	}
	if cfg.ReturnPath {
		r.pred = paths.NewTree(order)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.pred, nil
}

// init seeds distances and the heap with the sources.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
	}
	for _, s := range r.opts.Sources {
		if r.dist[s] != 0 {
			r.dist[s] = 0
			r.pq = append(r.pq, heapItem{vertex: s})
		}
	}
	heap.Init(&r.pq)
}

// process is the main loop: extract the live minimum, stop once it
// exceeds MaxDistance, relax its out-arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(heapItem)
		if item.dist > r.dist[item.vertex] {
			continue // stale
		}
		if item.dist > r.opts.MaxDistance {
			// Everything still in the heap is at least this far away.
			break
		}
		if err := r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax improves neighbor distances from the finalized vertex,
// honoring the impassable-arc threshold and the distance cap.
func (r *runner) relax(item heapItem) error {
	for _, a := range r.d.OutNeighborsWeighted(item.vertex) {
		if a.Weight >= r.opts.InfEdgeThreshold {
			continue // wall
		}
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %d->%d weight=%d",
				ErrNegativeWeight, item.vertex, a.Head, a.Weight)
		}
		cand := item.dist + a.Weight
		if cand > r.opts.MaxDistance {
			continue
		}
		if cand >= r.dist[a.Head] {
			continue
		}
		r.dist[a.Head] = cand
		if r.pred != nil {
			r.pred[a.Head] = item.vertex
		}
		heap.Push(&r.pq, heapItem{vertex: a.Head, dist: cand})
	}

	return nil
}
