// Package graph provides a lightweight node graph keyed by comparable values,
// with breadth-first and depth-first traversal.
//
// What
//
//   - Node[T] holds a value and its outgoing edges. Edges are keyed by the
//     target node's value, so ConnectsTo is O(1), and iterate in insertion
//     order, so traversals are deterministic.
//   - NodeCache[T] stores every node in a flat map so a node can be found by
//     value in O(1) wherever it sits in the graph. Create is idempotent.
//   - BFS walks level by level using queue.Queue; DFS walks pre-order using
//     stack.Stack, visiting edges in insertion order.
//   - ShortestPaths runs Dijkstra's algorithm over edge weights with a
//     heap.Heap min-heap (lazy decrease-key). AddEdge edges weigh
//     DefaultWeight, so on unweighted graphs distances count hops.
//
// Hooks and options
//
//   - The Visitor is called once per reachable node with its depth. Returning
//     ErrStopTraversal ends the walk successfully; any other error aborts it
//     and is returned wrapped.
//   - WithMaxDepth(d) stops expanding nodes at depth d (d ≥ 0).
//   - WithFilterNeighbor(fn) skips edges for which fn returns false. Options
//     are not generic, so fn sees Node values as any:
//
//	graph.WithFilterNeighbor(func(_, to any) bool { return to.(string) != "B" })
//
//   - WithContext(ctx) lets the caller cancel a long walk.
//   - WithMaxDistance(d) stops ShortestPaths from settling nodes beyond d.
//
// Errors (sentinel)
//
//   - ErrNilNode          traversal started from, or edge added towards, a nil node.
//   - ErrNilVisitor       traversal called with a nil Visitor.
//   - ErrOptionViolation  an invalid Option was supplied.
//   - ErrNegativeWeight   AddWeightedEdge received a negative weight.
//   - ErrNaNWeight        AddWeightedEdge received a NaN weight.
//   - ErrStopTraversal    returned by a Visitor to stop early (never returned by BFS/DFS).
//
// Complexity
//
//	BFS and DFS run in O(V + E) over the reachable subgraph;
//	ShortestPaths in O((V + E) log E).
//
// Example
//
//	cache := graph.NewNodeCache[int]()
//	root := cache.Create(1)
//	two := cache.Create(2)
//	root.AddEdge(two)
//	root.AddEdge(cache.Create(4))
//	two.AddEdge(cache.Create(3))
//	_ = root.DFS(func(n *graph.Node[int], _ int) error { fmt.Print(n.Value, " "); return nil }) // 1 2 3 4
//	_ = root.BFS(func(n *graph.Node[int], _ int) error { fmt.Print(n.Value, " "); return nil }) // 1 2 4 3
package graph
