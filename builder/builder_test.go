package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/builder"
)

func TestPath(t *testing.T) {
	d, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Order())
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, []int{1}, d.OutNeighbors(0))
	assert.Empty(t, d.OutNeighbors(3))

	_, err = builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCircuit(t *testing.T) {
	d, err := builder.Circuit(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, []int{1}, d.OutNeighbors(0))
	assert.Equal(t, []int{0}, d.OutNeighbors(2))

	_, err = builder.Circuit(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_BidirectionalRing(t *testing.T) {
	d, err := builder.Cycle(3)
	require.NoError(t, err)
	// every ring edge appears as two arcs
	assert.Equal(t, 6, d.Size())
	assert.Equal(t, []int{1, 2}, d.OutNeighbors(0))
	assert.Equal(t, []int{0, 2}, d.OutNeighbors(1))
	assert.Equal(t, []int{0, 1}, d.OutNeighbors(2))

	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	d, err := builder.Star(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, d.OutNeighbors(0))
	assert.Equal(t, []int{0}, d.OutNeighbors(2))
	assert.Equal(t, 6, d.Size())
}

func TestWheel(t *testing.T) {
	d, err := builder.Wheel(4)
	require.NoError(t, err)
	// hub reaches every ring vertex and back
	assert.Equal(t, []int{1, 2, 3}, d.OutNeighbors(0))
	// ring vertex 1: hub plus its two ring neighbors
	assert.Equal(t, []int{0, 2, 3}, d.OutNeighbors(1))
	assert.Equal(t, 12, d.Size())

	_, err = builder.Wheel(3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	d, err := builder.Complete(3)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Size())
	assert.Equal(t, []int{0, 2}, d.OutNeighbors(1))

	d1, err := builder.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 0, d1.Size())
}

func TestNoSelfLoops(t *testing.T) {
	gens := map[string]func(int) (interface{ Arcs() [][2]int }, error){
		"Path":     func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Path(n) },
		"Circuit":  func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Circuit(n) },
		"Cycle":    func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Cycle(n) },
		"Star":     func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Star(n) },
		"Wheel":    func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Wheel(n) },
		"Complete": func(n int) (interface{ Arcs() [][2]int }, error) { return builder.Complete(n) },
	}
	for name, gen := range gens {
		d, err := gen(5)
		require.NoError(t, err, name)
		for _, arc := range d.Arcs() {
			assert.NotEqual(t, arc[0], arc[1], "%s produced self-loop %v", name, arc)
		}
	}
}
