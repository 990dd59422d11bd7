// Package dfs defines options, result types, and error definitions for
// depth-first search over a core.Digraph.
package dfs

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

// Sentinel errors for DFS execution.
var (
	// ErrNilDigraph is returned if a nil digraph is passed.
	ErrNilDigraph = errors.New("dfs: digraph is nil")

	// ErrSourceOutOfRange is returned when a source vertex is outside [0, Order).
	ErrSourceOutOfRange = errors.New("dfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// to Traverse.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Step pairs a yielded vertex with its depth at first discovery.
type Step struct {
	Vertex int
	Depth  int
}

// Option configures Traverse via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for Traverse.
type Options struct {
	// Ctx allows cancellation or timeouts; cancelling aborts the traversal.
	Ctx context.Context

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// Depth 0 visits only the roots. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each arc curr -> next
	// before recursing; false skips the arc.
	FilterNeighbor func(curr, next int) bool

	// OnVisit, if non-nil, is invoked pre-order on vertex discovery.
	// A returned error aborts the traversal.
	OnVisit func(v, depth int) error

	// FullTraversal, if true, restarts from every unvisited vertex in
	// 0..Order, covering disconnected components (forest traversal).
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth
// limit, no filtering, no hook, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the
// roots; negative limits are an option violation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)

			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithOnVisit installs fn as a pre-order hook; returning an error
// aborts the traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal enables forest traversal over every unvisited
// vertex, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of Traverse.
type Result struct {
	// Order records vertices in pre-order (discovery sequence).
	Order []int

	// Depth is the dense discovery-depth array (Unreachable if never visited).
	Depth []int

	// Pred maps each vertex to the vertex it was discovered from.
	Pred paths.Tree
}
