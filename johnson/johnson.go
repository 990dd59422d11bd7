package johnson

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/scc"
)

// ErrNilDigraph is returned if a nil digraph is passed.
var ErrNilDigraph = errors.New("johnson: digraph is nil")

// Circuits returns every elementary circuit of d, each listed from its
// minimum ("anchor") vertex, anchors ascending. See the package
// documentation for the ordering and cost guarantees.
func Circuits(d core.Subgrapher) ([][]int, error) {
	return CircuitsCtx(context.Background(), d)
}

// CircuitsCtx is Circuits with cancellation: the context is checked
// once per anchor vertex, so an exponential enumeration can be
// abandoned between components. Already-collected circuits are
// discarded on cancellation.
func CircuitsCtx(ctx context.Context, d core.Subgrapher) ([][]int, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}

	order := d.Order()
	f := &finder{out: [][]int{}}
	for s := 0; s < order; s++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Restrict to vertices >= s; lower vertices keep their index
		// but lose all arcs, so they fall out as trivial components.
		min := s
		rest := d.Subgraph(func(v int) bool { return v >= min })

		comp := anchorComponent(rest, s)
		if comp == nil {
			continue
		}

		keep := make(map[int]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		sub := rest.Subgraph(func(v int) bool { return keep[v] })

		f.reset(order, sub)
		f.circuit(s, s)
	}

	return f.out, nil
}

// anchorComponent picks the candidate strongly connected component for
// anchor s: among components that can carry a circuit (two or more
// vertices, or a single vertex with a self-loop), the one with the
// smallest minimum vertex. Returns nil unless that minimum is s itself;
// a component anchored above s is handled by a later iteration, and
// running it now would duplicate its circuits.
func anchorComponent(d core.Subgrapher, s int) []int {
	comps, err := scc.StronglyConnected(d)
	if err != nil {
		// d is non-nil here by construction
		panic("johnson: " + err.Error())
	}

	var best []int
	for _, comp := range comps {
		if len(comp) == 1 && !hasSelfLoop(d, comp[0]) {
			continue
		}
		if best == nil || comp[0] < best[0] {
			best = comp
		}
	}
	if best == nil || best[0] != s {
		return nil
	}

	return best
}

func hasSelfLoop(d core.Digraph, v int) bool {
	return slices.Contains(d.OutNeighbors(v), v)
}

// finder holds the per-anchor search state of the circuit recursion.
type finder struct {
	sub     core.Digraph // current component-induced subgraph
	blocked []bool
	b       [][]int // block-dependency sets: unblocking w cascades to b[w]
	stack   []int   // current circuit candidate path
	out     [][]int
}

// reset clears the block state for a fresh anchor.
func (f *finder) reset(order int, sub core.Digraph) {
	f.sub = sub
	f.blocked = make([]bool, order)
	f.b = make([][]int, order)
	f.stack = f.stack[:0]
}

// circuit explores paths from v back to the anchor s inside the current
// component, reporting whether any circuit through v was closed.
func (f *finder) circuit(v, s int) bool {
	found := false
	f.stack = append(f.stack, v)
	f.blocked[v] = true

	for _, w := range f.sub.OutNeighbors(v) {
		if w == s {
			// closing arc: the current stack is one elementary circuit
			f.out = append(f.out, slices.Clone(f.stack))
			found = true
		} else if !f.blocked[w] && f.circuit(w, s) {
			found = true
		}
	}

	if found {
		f.unblock(v)
	} else {
		// no circuit through v yet: defer its unblocking to each
		// successor, to be cascaded if one of them ever closes a circuit
		for _, w := range f.sub.OutNeighbors(v) {
			if !slices.Contains(f.b[w], v) {
				f.b[w] = append(f.b[w], v)
			}
		}
	}

	f.stack = f.stack[:len(f.stack)-1]

	return found
}

// unblock removes v from the blocked set and cascades through b[v],
// consuming it.
func (f *finder) unblock(v int) {
	f.blocked[v] = false
	for len(f.b[v]) > 0 {
		w := f.b[v][0]
		f.b[v] = f.b[v][1:]
		if f.blocked[w] {
			f.unblock(w)
		}
	}
}
