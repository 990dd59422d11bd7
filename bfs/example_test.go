package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/bfs"
	"github.com/katalvlaran/digraph/core"
)

// ExampleIterator_Next walks a small digraph lazily.
func ExampleIterator_Next() {
	// 0 -> 1 -> 2
	//  \-> 3
	d := core.NewAdjacencyList(4)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(0, 3)
	_ = d.AddArc(1, 2)

	it, _ := bfs.New(d, 0)
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		fmt.Printf("vertex %d at depth %d\n", step.Vertex, step.Depth)
	}
	// Output:
	// vertex 0 at depth 0
	// vertex 1 at depth 1
	// vertex 3 at depth 1
	// vertex 2 at depth 2
}

// ExampleDistances computes unweighted shortest distances.
func ExampleDistances() {
	d := core.NewAdjacencyList(4)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(1, 2)
	_ = d.AddArc(3, 0)

	dist, _ := bfs.Distances(d, 0)
	fmt.Println(dist[0], dist[1], dist[2], dist[3] == bfs.Unreachable)
	// Output:
	// 0 1 2 true
}
