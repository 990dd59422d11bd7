// Package dijkstra defines options, result types, and error definitions
// for the shortest-path implementation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance sentinel for a vertex the search never
// finalized.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilDigraph indicates a nil digraph was passed.
	ErrNilDigraph = errors.New("dijkstra: digraph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, Order).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNoSource indicates Run was invoked without any source vertex.
	ErrNoSource = errors.New("dijkstra: no source vertex supplied")

	// ErrNegativeWeight indicates a negative arc weight was detected;
	// Dijkstra requires non-negative weights (use Bellman-Ford otherwise).
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold received a
	// non-positive threshold, which would make every arc impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Step pairs a finalized vertex with its shortest distance from the
// nearest source.
type Step struct {
	Vertex int
	Dist   int64
}

// Options configures Run.
type Options struct {
	// Sources are the starting vertices (distance 0).
	Sources []int

	// ReturnPath, if true, returns the predecessor tree alongside the
	// distances; otherwise the tree result is nil.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose shortest distance
	// exceeds it are never finalized. Default Unreachable (no cap).
	MaxDistance int64

	// InfEdgeThreshold treats arcs with weight >= the threshold as
	// impassable walls. Default Unreachable (no walls).
	InfEdgeThreshold int64

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns Options with no sources, no distance cap, no
// impassable-arc threshold, and no predecessor tree.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Unreachable,
		InfEdgeThreshold: Unreachable,
	}
}

// Source adds a single source vertex.
func Source(v int) Option {
	return func(o *Options) { o.Sources = append(o.Sources, v) }
}

// Sources adds several source vertices.
func Sources(vs ...int) Option {
	return func(o *Options) { o.Sources = append(o.Sources, vs...) }
}

// WithReturnPath enables the predecessor tree in Run's results.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the distances explored. Negative caps are an
// option violation surfaced by Run.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks arcs with weight >= threshold impassable.
// Non-positive thresholds are an option violation surfaced by Run.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// heapItem is a (distance, vertex) pair stored in the priority queue.
// Multiple entries per vertex may coexist; only the one matching the
// vertex's current best distance is live.
type heapItem struct {
	vertex int
	dist   int64
}

// minHeap is a min-heap of heapItem ordered by dist ascending,
// implementing container/heap. Tie-break between equal distances is
// heap-internal and unspecified.
type minHeap []heapItem

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
