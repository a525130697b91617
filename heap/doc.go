// Package heap provides an array-backed binary heap over arbitrary element
// types, ordered by a numeric key.
//
// Overview:
//
//   - One generic Heap[T] type serves both orderings. The ordering is an
//     injected order.Direction: Ascending yields a min-heap, Descending a
//     max-heap. NewMin / NewMax are the usual entry points.
//   - Elements are ranked by an order.Extractor supplied at construction.
//     Numeric element types use NewMinOf / NewMaxOf, which install the
//     identity extractor.
//   - Storage is a slice interpreted as a complete binary tree: index 0 is the
//     root, the children of i live at 2i+1 and 2i+2, its parent at (i-1)/2.
//
// Heap invariant:
//
//	For every node i with a child c, key(storage[i]) ≤ key(storage[c]) in a
//	min-heap (≥ in a max-heap). Push and Pop restore it before returning.
//
// Complexity:
//
//   - Push: O(log n) (sift up).
//   - Pop:  O(log n) (sift down).
//   - Peek, Len: O(1).
//   - The extractor is called on every comparison; keys are never cached.
//
// Empty heaps:
//
//	Pop and Peek on an empty heap return the zero value and false. This is the
//	only failure mode; it never panics and never changes Len.
//
// Iteration:
//
//	All and Values expose storage in array (root-first) order, which is NOT
//	sorted order. Drain the heap with Pop for sorted output.
//
// Thread safety:
//
//	A Heap is not safe for concurrent use; synchronize externally.
//
// Example usage:
//
//	h := heap.NewMinOf[int]()
//	for _, v := range []int{5, 3, 8, 1} {
//	    h.Push(v)
//	}
//	for h.Len() > 0 {
//	    v, _ := h.Pop()
//	    fmt.Println(v) // 1, 3, 5, 8
//	}
package heap
