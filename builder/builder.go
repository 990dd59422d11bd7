// Package builder implements the digraph generators.
//
// Contract (all generators):
//   - Validate n first, fail fast with ErrTooFewVertices.
//   - Emit arcs in a fixed order for determinism.
//   - Return only sentinel errors; never panic at runtime.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ErrTooFewVertices is returned when a generator's minimum order is not met.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// Generator minimums.
const (
	minPath     = 1
	minCircuit  = 2
	minCycle    = 3
	minStar     = 2
	minWheel    = 4
	minComplete = 1
)

// Path returns the path digraph 0 -> 1 -> ... -> n-1. Requires n >= 1.
func Path(n int) (*core.AdjacencyList, error) {
	if n < minPath {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPath, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for u := 0; u+1 < n; u++ {
		if err := d.AddArc(u, u+1); err != nil {
			return nil, fmt.Errorf("Path: AddArc(%d,%d): %w", u, u+1, err)
		}
	}

	return d, nil
}

// Circuit returns the one-way ring 0 -> 1 -> ... -> n-1 -> 0.
// Requires n >= 2.
func Circuit(n int) (*core.AdjacencyList, error) {
	if n < minCircuit {
		return nil, fmt.Errorf("Circuit: n=%d < min=%d: %w", n, minCircuit, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		if err := d.AddArc(u, (u+1)%n); err != nil {
			return nil, fmt.Errorf("Circuit: AddArc(%d,%d): %w", u, (u+1)%n, err)
		}
	}

	return d, nil
}

// Cycle returns the bidirectional ring on n vertices: each ring edge
// {u, u+1 mod n} contributes the arcs u -> u+1 and u+1 -> u.
// Requires n >= 3.
func Cycle(n int) (*core.AdjacencyList, error) {
	if n < minCycle {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycle, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		v := (u + 1) % n
		if err := d.AddArc(u, v); err != nil {
			return nil, fmt.Errorf("Cycle: AddArc(%d,%d): %w", u, v, err)
		}
		if err := d.AddArc(v, u); err != nil {
			return nil, fmt.Errorf("Cycle: AddArc(%d,%d): %w", v, u, err)
		}
	}

	return d, nil
}

// Star returns the star digraph with hub 0 and leaves 1..n-1, each
// connected to the hub by arcs in both directions. Requires n >= 2.
func Star(n int) (*core.AdjacencyList, error) {
	if n < minStar {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStar, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for v := 1; v < n; v++ {
		if err := d.AddArc(0, v); err != nil {
			return nil, fmt.Errorf("Star: AddArc(0,%d): %w", v, err)
		}
		if err := d.AddArc(v, 0); err != nil {
			return nil, fmt.Errorf("Star: AddArc(%d,0): %w", v, err)
		}
	}

	return d, nil
}

// Wheel returns the wheel digraph: a bidirectional ring on vertices
// 1..n-1 plus hub 0 spoked to every ring vertex in both directions.
// Requires n >= 4 so the outer ring is a valid cycle.
func Wheel(n int) (*core.AdjacencyList, error) {
	if n < minWheel {
		return nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheel, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	ring := n - 1
	for i := 0; i < ring; i++ {
		u := 1 + i
		v := 1 + (i+1)%ring
		if err := d.AddArc(u, v); err != nil {
			return nil, fmt.Errorf("Wheel: AddArc(%d,%d): %w", u, v, err)
		}
		if err := d.AddArc(v, u); err != nil {
			return nil, fmt.Errorf("Wheel: AddArc(%d,%d): %w", v, u, err)
		}
	}
	for v := 1; v < n; v++ {
		if err := d.AddArc(0, v); err != nil {
			return nil, fmt.Errorf("Wheel: AddArc(0,%d): %w", v, err)
		}
		if err := d.AddArc(v, 0); err != nil {
			return nil, fmt.Errorf("Wheel: AddArc(%d,0): %w", v, err)
		}
	}

	return d, nil
}

// Complete returns the complete digraph on n vertices: every ordered
// pair (u, v) with u != v is an arc. Requires n >= 1.
func Complete(n int) (*core.AdjacencyList, error) {
	if n < minComplete {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minComplete, ErrTooFewVertices)
	}
	d := core.NewAdjacencyList(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err := d.AddArc(u, v); err != nil {
				return nil, fmt.Errorf("Complete: AddArc(%d,%d): %w", u, v, err)
			}
		}
	}

	return d, nil
}
