package scc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/bfs"
	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/scc"
)

// sortComps orders components by their minimum vertex so tests can
// compare without relying on emission order.
func sortComps(comps [][]int) [][]int {
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}

func TestStronglyConnected_NilDigraph(t *testing.T) {
	_, err := scc.StronglyConnected(nil)
	assert.ErrorIs(t, err, scc.ErrNilDigraph)
}

// TestStronglyConnected_Concrete checks the 8-vertex reference digraph:
// components {0,1,4}, {5,6}, {2,3,7}.
func TestStronglyConnected_Concrete(t *testing.T) {
	d := core.NewAdjacencyList(8)
	arcs := [][2]int{
		{0, 1}, {1, 2}, {1, 4}, {2, 3}, {2, 6}, {3, 2}, {3, 7},
		{4, 0}, {4, 5}, {5, 6}, {6, 5}, {7, 3}, {7, 6},
	}
	for _, a := range arcs {
		require.NoError(t, d.AddArc(a[0], a[1]))
	}

	comps, err := scc.StronglyConnected(d)
	require.NoError(t, err)
	want := [][]int{{0, 1, 4}, {2, 3, 7}, {5, 6}}
	assert.Equal(t, want, sortComps(comps))
}

// TestStronglyConnected_Partition: every vertex appears in exactly one
// component, and components are mutually reachable internally.
func TestStronglyConnected_Partition(t *testing.T) {
	d, err := builder.Wheel(9)
	require.NoError(t, err)

	comps, err := scc.StronglyConnected(d)
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, comp := range comps {
		require.NotEmpty(t, comp)
		for _, v := range comp {
			seen[v]++
		}
	}
	require.Len(t, seen, d.Order())
	for v, n := range seen {
		assert.Equalf(t, 1, n, "vertex %d in %d components", v, n)
	}

	// internal strong connectivity: every member reaches every other
	for _, comp := range comps {
		for _, u := range comp {
			dist, err := bfs.Distances(d, u)
			require.NoError(t, err)
			for _, v := range comp {
				assert.NotEqualf(t, bfs.Unreachable, dist[v], "%d cannot reach %d", u, v)
			}
		}
	}
}

// TestStronglyConnected_Circuit: a one-way ring is a single component.
func TestStronglyConnected_Circuit(t *testing.T) {
	d, err := builder.Circuit(5)
	require.NoError(t, err)
	comps, err := scc.StronglyConnected(d)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, comps[0])
}

// TestStronglyConnected_Path: a path decomposes into singletons.
func TestStronglyConnected_Path(t *testing.T) {
	d, err := builder.Path(4)
	require.NoError(t, err)
	comps, err := scc.StronglyConnected(d)
	require.NoError(t, err)
	want := [][]int{{0}, {1}, {2}, {3}}
	assert.Equal(t, want, sortComps(comps))
}

// TestStronglyConnected_Empty handles the zero-order digraph.
func TestStronglyConnected_Empty(t *testing.T) {
	comps, err := scc.StronglyConnected(core.NewAdjacencyList(0))
	require.NoError(t, err)
	assert.Empty(t, comps)
}

// TestCondensation collapses each component to one DAG vertex.
func TestCondensation(t *testing.T) {
	// two 2-cycles bridged by one arc: {0,1} -> {2,3}
	d := core.NewAdjacencyList(4)
	for _, a := range [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}, {1, 2}} {
		require.NoError(t, d.AddArc(a[0], a[1]))
	}

	cond, member, err := scc.Condensation(d)
	require.NoError(t, err)
	require.Equal(t, 2, cond.Order())

	assert.Equal(t, member[0], member[1])
	assert.Equal(t, member[2], member[3])
	assert.NotEqual(t, member[0], member[2])

	// exactly one arc, from {0,1}'s component to {2,3}'s
	require.Equal(t, 1, cond.Size())
	assert.True(t, cond.HasArc(member[0], member[2]))

	// the condensation is acyclic: its own SCCs are singletons
	comps, err := scc.StronglyConnected(cond)
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}
