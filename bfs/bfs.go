package bfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// Iterator is a lazy breadth-first traversal. Create with New, then
// call Next until it reports false. An Iterator borrows its digraph
// read-only and owns all working state; it is not safe for concurrent
// use by multiple goroutines.
type Iterator struct {
	d        core.Digraph
	frontier []Step // FIFO: pop front, push back
	visited  []bool
	pred     paths.Tree
}

// New returns an Iterator seeded with the given source vertices, each
// at depth 0 and pre-marked visited. Duplicate sources collapse to one
// frontier entry. With zero sources the iterator is exhausted from the
// start.
func New(d core.Digraph, sources ...int) (*Iterator, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}
	order := d.Order()
	it := &Iterator{
		d:        d,
		frontier: make([]Step, 0, len(sources)),
		visited:  make([]bool, order),
		pred:     paths.NewTree(order),
	}
	for _, s := range sources {
		if s < 0 || s >= order {
			return nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
		if !it.visited[s] {
			it.visited[s] = true
			it.frontier = append(it.frontier, Step{Vertex: s})
		}
	}

	return it, nil
}

// Next pops the front of the frontier, enqueues every unvisited
// out-neighbor of the popped vertex at depth+1, and returns the popped
// step. Reports false once the frontier is empty; the iterator stays
// exhausted from then on.
func (it *Iterator) Next() (Step, bool) {
	if len(it.frontier) == 0 {
		return Step{}, false
	}
	step := it.frontier[0]
	it.frontier = it.frontier[1:]
	for _, v := range it.d.OutNeighbors(step.Vertex) {
		if !it.visited[v] {
			it.visited[v] = true
			it.pred[v] = step.Vertex
			it.frontier = append(it.frontier, Step{Vertex: v, Depth: step.Depth + 1})
		}
	}

	return step, true
}

// Distances drains the iterator and returns the dense depth array:
// dist[v] is the arc distance from the nearest source, or Unreachable.
// Consumes the iterator; only the first call observes the full run.
func (it *Iterator) Distances() []int {
	dist := make([]int, len(it.visited))
	for v := range dist {
		dist[v] = Unreachable
	}
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		dist[step.Vertex] = step.Depth
	}

	return dist
}

// Predecessors drains the iterator and returns the predecessor tree.
// Sources and unreached vertices map to paths.None.
func (it *Iterator) Predecessors() paths.Tree {
	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}

	return it.pred
}

// Distances is a convenience wrapper: run a full BFS from sources and
// return the dense distance array.
func Distances(d core.Digraph, sources ...int) ([]int, error) {
	it, err := New(d, sources...)
	if err != nil {
		return nil, err
	}

	return it.Distances(), nil
}

// Predecessors is a convenience wrapper: run a full BFS from sources
// and return the predecessor tree.
func Predecessors(d core.Digraph, sources ...int) (paths.Tree, error) {
	it, err := New(d, sources...)
	if err != nil {
		return nil, err
	}

	return it.Predecessors(), nil
}

// walker encapsulates mutable Traverse state.
type walker struct {
	d     core.Digraph
	opts  Options
	queue []Step
	vis   []bool
	res   *Result
}

// Traverse runs breadth-first search from the source vertices with
// functional options applied, honoring cancellation, depth limits,
// neighbor filtering, and hooks. Returns the partial Result alongside
// the error when a hook or the context aborts the run.
func Traverse(d core.Digraph, sources []int, opts ...Option) (*Result, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	order := d.Order()
	w := &walker{
		d:     d,
		opts:  o,
		queue: make([]Step, 0, order),
		vis:   make([]bool, order),
		res: &Result{
			Order: make([]int, 0, order),
			Depth: make([]int, order),
			Pred:  paths.NewTree(order),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = Unreachable
	}
	for _, s := range sources {
		if s < 0 || s >= order {
			return nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
		if !w.vis[s] {
			w.enqueue(s, 0, paths.None)
		}
	}

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls
// OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.vis[v] = true
	w.res.Depth[v] = d
	w.res.Pred[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, Step{Vertex: v, Depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		step := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(step.Vertex, step.Depth)

		w.res.Order = append(w.res.Order, step.Vertex)
		if err := w.opts.OnVisit(step.Vertex, step.Depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", step.Vertex, err)
		}

		w.enqueueNeighbors(step)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen out-neighbor of the popped step.
func (w *walker) enqueueNeighbors(step Step) {
	next := step.Depth + 1
	for _, v := range w.d.OutNeighbors(step.Vertex) {
		if !w.opts.FilterNeighbor(step.Vertex, v) {
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if !w.vis[v] {
			w.enqueue(v, next, step.Vertex)
		}
	}
}
