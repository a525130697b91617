// Package lvlds is a small, generic, in-memory container library built
// around ordered extrema: structures that always know their smallest or
// largest element.
//
// What is inside?
//
//	The core:
//		• order/  – Extractor (element → float64 key) and Direction (Ascending / Descending)
//		• heap/   – binary Heap with MinHeap / MaxHeap constructors
//		• minmax/ – MinStack / MaxStack: a LIFO that tracks its extremum and tie count
//
//	Companions:
//		• list/   – doubly linked list
//		• stack/  – plain LIFO
//		• queue/  – plain FIFO on list
//		• quick/  – Stack / Queue with O(1) access and removal by ID
//		• pqueue/ – bucketed priority queue, priorities ordered by heap
//		• trie/   – prefix tree with word and prefix search
//		• search/ – binary search over sorted slices with an Extractor
//		• graph/  – node graph: BFS, DFS, Dijkstra shortest paths
//
//	cmd/extrema streams numbers through a MinStack/MaxStack and a heap.
//
// Every structure is single-threaded. Operations on an empty structure
// return the zero value and false rather than an error.
//
// Quick example:
//
//	h := heap.NewMinOf[int]()
//	for _, v := range []int{5, 3, 8, 1} {
//		h.Push(v)
//	}
//	v, _ := h.Pop() // 1
//
//	go get github.com/katalvlaran/lvlds
package lvlds
