package scc_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/scc"
)

// ExampleStronglyConnected decomposes a digraph with one 2-cycle.
func ExampleStronglyConnected() {
	// 0 <-> 1 -> 2
	d := core.NewAdjacencyList(3)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(1, 0)
	_ = d.AddArc(1, 2)

	comps, _ := scc.StronglyConnected(d)
	for _, comp := range comps {
		fmt.Println(comp)
	}
	// Output:
	// [2]
	// [0 1]
}
