// Package bfs defines options, result types, and error definitions for
// breadth-first search over a core.Digraph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/paths"
)

// Unreachable is the Distances entry for a vertex the search never
// discovered.
const Unreachable = math.MaxInt

// Sentinel errors for BFS execution.
var (
	// ErrNilDigraph is returned if a nil digraph is passed.
	ErrNilDigraph = errors.New("bfs: digraph is nil")

	// ErrSourceOutOfRange is returned when a source vertex is outside [0, Order).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// to Traverse.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Step pairs a yielded vertex with its depth (distance in arcs) from
// the nearest source.
type Step struct {
	Vertex int
	Depth  int
}

// Option configures Traverse via functional arguments. An invalid
// Option records its violation internally and surfaces as
// ErrOptionViolation when Traverse runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing Traverse.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 explicitly disables the limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr -> next.
	FilterNeighbor func(curr, next int) bool

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. A returned error aborts
	// the traversal and propagates.
	OnVisit func(v, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth
// limit, no filtering, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid option, ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the
// traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Traverse:
//   - Order: vertices in visit sequence.
//   - Depth: dense distance array (Unreachable where never visited).
//   - Pred:  predecessor tree for path reconstruction.
type Result struct {
	Order []int
	Depth []int
	Pred  paths.Tree
}

// PathTo reconstructs the path from the nearest source to dest by
// walking Pred backward. Returns false if dest was never reached.
func (r *Result) PathTo(dest int) ([]int, bool) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] == Unreachable {
		return nil, false
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		if r.Pred[cur] == paths.None {
			break
		}
		cur = r.Pred[cur]
	}
	// reverse to get source -> dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
