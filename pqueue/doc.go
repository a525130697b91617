// Package pqueue implements a bucket priority queue: elements are grouped
// by integer priority and always leave from the highest non-empty priority.
//
// Within one priority, the bucket behaves like a stack: the element pushed
// most recently is popped first.
//
// The set of non-empty priorities is kept in a heap.Heap (max ordering), so
// finding the highest priority is O(1) and adding or retiring a priority is
// O(log P), where P is the number of distinct non-empty priorities.
//
// Options:
//
//	– WithMaxPriority(n): reject pushes above n with ErrPriorityRange.
//	  Default: math.MaxInt (no cap). Panics if n < 0.
//
// Errors (sentinel):
//
//	– ErrPriorityRange  priority is negative or exceeds the configured maximum.
//
// Example usage:
//
//	q := pqueue.New[string](pqueue.WithMaxPriority(10))
//	_ = q.Push(1, "low")
//	_ = q.Push(9, "urgent")
//	v, _ := q.Pop() // "urgent"
package pqueue
