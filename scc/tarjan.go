package scc

import (
	"errors"
	"sort"

	"github.com/katalvlaran/digraph/core"
)

// ErrNilDigraph is returned if a nil digraph is passed.
var ErrNilDigraph = errors.New("scc: digraph is nil")

// unvisited marks a vertex not yet assigned a discovery index.
const unvisited = -1

// tarjan holds the per-run state of the low-link computation.
type tarjan struct {
	d       core.Digraph
	next    int   // next discovery index to assign
	index   []int // discovery index per vertex, unvisited if none
	lowLink []int // smallest index reachable per vertex
	stack   []int // vertices of the component candidate under construction
	onStack []bool
	comps   [][]int
}

// StronglyConnected returns the strongly connected components of d.
// Each component is sorted ascending; components are emitted in
// root-completion order. The components partition the vertex set.
func StronglyConnected(d core.Digraph) ([][]int, error) {
	if d == nil {
		return nil, ErrNilDigraph
	}
	order := d.Order()
	t := &tarjan{
		d:       d,
		index:   make([]int, order),
		lowLink: make([]int, order),
		onStack: make([]bool, order),
	}
	for v := range t.index {
		t.index[v] = unvisited
	}
	for v := 0; v < order; v++ {
		if t.index[v] == unvisited {
			t.connect(v)
		}
	}

	return t.comps, nil
}

// connect performs the recursive low-link computation rooted at u.
func (t *tarjan) connect(u int) {
	t.index[u] = t.next
	t.lowLink[u] = t.next
	t.next++
	t.stack = append(t.stack, u)
	t.onStack[u] = true

	for _, v := range t.d.OutNeighbors(u) {
		switch {
		case t.index[v] == unvisited:
			t.connect(v)
			if t.lowLink[v] < t.lowLink[u] {
				t.lowLink[u] = t.lowLink[v]
			}
		case t.onStack[v]:
			if t.index[v] < t.lowLink[u] {
				t.lowLink[u] = t.index[v]
			}
			// else: v belongs to an already-completed component
		}
	}

	if t.lowLink[u] == t.index[u] {
		// u roots a component: pop the stack down to and including u.
		var comp []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == u {
				break
			}
		}
		sort.Ints(comp)
		t.comps = append(t.comps, comp)
	}
}

// Condensation returns the component DAG of d: one vertex per strongly
// connected component (numbered in StronglyConnected emission order),
// an arc between two components whenever any arc of d crosses them, and
// the vertex-to-component index map.
func Condensation(d core.Digraph) (*core.AdjacencyList, []int, error) {
	comps, err := StronglyConnected(d)
	if err != nil {
		return nil, nil, err
	}

	member := make([]int, d.Order())
	for i, comp := range comps {
		for _, v := range comp {
			member[v] = i
		}
	}

	cond := core.NewAdjacencyList(len(comps))
	for u := 0; u < d.Order(); u++ {
		cu := member[u]
		for _, v := range d.OutNeighbors(u) {
			if cv := member[v]; cv != cu {
				// AddArc dedups; endpoints are component indices, always valid
				_ = cond.AddArc(cu, cv)
			}
		}
	}

	return cond, member, nil
}
