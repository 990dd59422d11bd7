package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// Iterator is a lazy depth-first traversal. Create with New, then call
// Next until it reports false. Not safe for concurrent use.
type Iterator struct {
	d       core.Digraph
	stack   []Step // LIFO: push/pop at the tail
	visited []bool
}

// New returns an Iterator seeded with the given sources, pushed in
// reverse argument order so the first source is explored first. Each
// source is marked visited at push time (check-before-push discipline).
func New(d core.Digraph, sources ...int) (*Iterator, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}
	order := d.Order()
	it := &Iterator{
		d:       d,
		stack:   make([]Step, 0, len(sources)),
		visited: make([]bool, order),
	}
	for i := len(sources) - 1; i >= 0; i-- {
		s := sources[i]
		if s < 0 || s >= order {
			return nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
		if !it.visited[s] {
			it.visited[s] = true
			it.stack = append(it.stack, Step{Vertex: s})
		}
	}

	return it, nil
}

// Next pops the top of the stack, pushes its unvisited out-neighbors in
// reverse enumeration order at depth+1, and yields the popped step.
// Every yielded vertex is fresh; exhaustion is terminal.
func (it *Iterator) Next() (Step, bool) {
	n := len(it.stack)
	if n == 0 {
		return Step{}, false
	}
	step := it.stack[n-1]
	it.stack = it.stack[:n-1]

	nbs := it.d.OutNeighbors(step.Vertex)
	for i := len(nbs) - 1; i >= 0; i-- {
		v := nbs[i]
		if !it.visited[v] {
			it.visited[v] = true
			it.stack = append(it.stack, Step{Vertex: v, Depth: step.Depth + 1})
		}
	}

	return step, true
}

// Distances drains the iterator and returns the dense discovery-depth
// array (Unreachable where never visited). Consumes the iterator.
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

// walker encapsulates the recursive Traverse state.
type walker struct {
	d    core.Digraph
	opts Options
	res  *Result
	vis  []bool
}

// Traverse performs recursive pre-order depth-first search from the
// source vertices. With WithFullTraversal it covers all components by
// restarting from every unvisited vertex of 0..Order after the sources.
// Returns the partial Result alongside the error when a hook or the
// context aborts the run.
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
	res := &Result{
		Order: make([]int, 0, order),
		Depth: make([]int, order),
		Pred:  paths.NewTree(order),
	}
	for v := range res.Depth {
		res.Depth[v] = Unreachable
	}
	w := &walker{d: d, opts: o, res: res, vis: make([]bool, order)}

	for _, s := range sources {
		if s < 0 || s >= order {
			return nil, fmt.Errorf("%w: %d (order %d)", ErrSourceOutOfRange, s, order)
		}
		if !w.vis[s] {
			if err := w.traverse(s, 0); err != nil {
				return res, err
			}
		}
	}
	if o.FullTraversal {
		for v := 0; v < order; v++ {
			if !w.vis[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	}

	return res, nil
}

// traverse visits vertex v at the given depth, then recurses into its
// unvisited out-neighbors. Honors cancellation, depth limit, filtering,
// and the pre-order hook.
func (w *walker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.vis[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	if w.opts.MaxDepth >= 0 && depth == w.opts.MaxDepth {
		return nil
	}

	for _, next := range w.d.OutNeighbors(v) {
		if w.vis[next] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, next) {
			continue
		}
		w.res.Pred[next] = v
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	return nil
}
