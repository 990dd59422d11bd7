package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dfs"
)

// TestNew_Errors verifies that invalid inputs are rejected.
func TestNew_Errors(t *testing.T) {
	if _, err := dfs.New(nil, 0); !errors.Is(err, dfs.ErrNilDigraph) {
		t.Errorf("nil digraph: want ErrNilDigraph, got %v", err)
	}
	d := core.NewAdjacencyList(1)
	if _, err := dfs.New(d, 1); !errors.Is(err, dfs.ErrSourceOutOfRange) {
		t.Errorf("out-of-range source: want ErrSourceOutOfRange, got %v", err)
	}
}

// TestNext_PreOrder: the first out-neighbor branch is fully explored
// before its sibling.
func TestNext_PreOrder(t *testing.T) {
	// 0 -> 1 -> 2
	//  \-> 3
	d := core.NewAdjacencyList(4)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(0, 3)
	_ = d.AddArc(1, 2)

	it, err := dfs.New(d, 0)
	if err != nil {
		t.Fatal(err)
	}
	var order []int
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		order = append(order, step.Vertex)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(order, want) {
		t.Errorf("pre-order = %v; want %v", order, want)
	}
}

// TestNext_Reachability: the yielded set equals the reachable set,
// regardless of traversal order.
func TestNext_Reachability(t *testing.T) {
	d := core.NewAdjacencyList(6)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(1, 2)
	_ = d.AddArc(2, 0) // cycle back
	_ = d.AddArc(1, 3)
	_ = d.AddArc(4, 5) // separate component

	it, err := dfs.New(d, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[int]bool)
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		if got[step.Vertex] {
			t.Fatalf("vertex %d yielded twice", step.Vertex)
		}
		got[step.Vertex] = true
	}
	want := map[int]bool{0: true, 1: true, 2: true, 3: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reachable set = %v; want %v", got, want)
	}
}

// TestDistances records discovery depths and Unreachable sentinels.
func TestDistances(t *testing.T) {
	d, err := builder.Path(4)
	if err != nil {
		t.Fatal(err)
	}
	it, err := dfs.New(d, 1)
	if err != nil {
		t.Fatal(err)
	}
	dist := it.Distances()
	want := []int{dfs.Unreachable, 0, 1, 2}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
}

// TestNext_ZeroSources exhausts immediately.
func TestNext_ZeroSources(t *testing.T) {
	it, err := dfs.New(core.NewAdjacencyList(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.Next(); ok {
		t.Error("zero sources: want immediate exhaustion")
	}
}

// TestTraverse_PreOrderAndPred checks recursive traversal output.
func TestTraverse_PreOrderAndPred(t *testing.T) {
	d := core.NewAdjacencyList(5)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(0, 2)
	_ = d.AddArc(1, 3)
	_ = d.AddArc(2, 4)

	res, err := dfs.Traverse(d, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Pred[3] != 1 || res.Pred[4] != 2 {
		t.Errorf("Pred = %v", res.Pred)
	}
}

// TestTraverse_FullTraversal covers disconnected components.
func TestTraverse_FullTraversal(t *testing.T) {
	d := core.NewAdjacencyList(4)
	_ = d.AddArc(0, 1)
	_ = d.AddArc(2, 3)

	res, err := dfs.Traverse(d, nil, dfs.WithFullTraversal())
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("forest Order = %v; want %v", res.Order, want)
	}
}

// TestTraverse_MaxDepth stops recursion at the limit.
func TestTraverse_MaxDepth(t *testing.T) {
	d, err := builder.Path(5)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dfs.Traverse(d, []int{0}, dfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}

	if _, err = dfs.Traverse(d, []int{0}, dfs.WithMaxDepth(-2)); !errors.Is(err, dfs.ErrOptionViolation) {
		t.Errorf("negative limit: want ErrOptionViolation, got %v", err)
	}
}

// TestTraverse_FilterAndHook exercises arc filtering and hook abort.
func TestTraverse_FilterAndHook(t *testing.T) {
	d, err := builder.Path(4)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dfs.Traverse(d, []int{0},
		dfs.WithFilterNeighbor(func(_, next int) bool { return next != 2 }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}

	boom := errors.New("boom")
	if _, err = dfs.Traverse(d, []int{0},
		dfs.WithOnVisit(func(v, _ int) error {
			if v == 2 {
				return boom
			}

			return nil
		}),
	); !errors.Is(err, boom) {
		t.Errorf("hook abort: want boom, got %v", err)
	}
}

// TestTraverse_Cancelled aborts on context cancellation.
func TestTraverse_Cancelled(t *testing.T) {
	d, err := builder.Complete(4)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = dfs.Traverse(d, []int{0}, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
