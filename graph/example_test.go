package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/graph"
)

// ExampleNode_BFS contrasts breadth-first and depth-first order on
// 1→2, 1→4, 2→3.
func ExampleNode_BFS() {
	cache := graph.NewNodeCache[int]()
	root := cache.Create(1)
	two := cache.Create(2)
	root.AddEdge(two)
	root.AddEdge(cache.Create(4))
	two.AddEdge(cache.Create(3))

	var order []int
	record := func(n *graph.Node[int], _ int) error {
		order = append(order, n.Value)
		return nil
	}
	_ = root.BFS(record)
	fmt.Println(order)

	order = nil
	_ = root.DFS(record)
	fmt.Println(order)

	// Output:
	// [1 2 4 3]
	// [1 2 3 4]
}
