package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// ExampleRun computes shortest distances with a path back to the source.
func ExampleRun() {
	d := core.NewAdjacencyListWeighted(4)
	_ = d.AddArcWeighted(0, 1, 2)
	_ = d.AddArcWeighted(0, 3, 4)
	_ = d.AddArcWeighted(1, 3, 0)
	_ = d.AddArcWeighted(1, 2, 5)

	dist, pred, _ := dijkstra.Run(d, dijkstra.Source(0), dijkstra.WithReturnPath())
	fmt.Println("dist to 3:", dist[3])

	path, _ := pred.Search(3, 0)
	fmt.Println("pred chain:", path)
	// Output:
	// dist to 3: 2
	// pred chain: [3 1 0]
}

// ExampleIterator_Next consumes finalized vertices lazily.
func ExampleIterator_Next() {
	d := core.NewAdjacencyListWeighted(3)
	_ = d.AddArcWeighted(0, 1, 1)
	_ = d.AddArcWeighted(1, 2, 1)

	it, _ := dijkstra.New(d, 0)
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		fmt.Printf("vertex %d at distance %d\n", step.Vertex, step.Dist)
	}
	// Output:
	// vertex 0 at distance 0
	// vertex 1 at distance 1
	// vertex 2 at distance 2
}
