// Package quick provides a stack and a queue whose elements can also be read
// or deleted by a handle in O(1).
//
// Push (Stack) and Enqueue (Queue) return an ID, unique within the container
// and assigned from an auto-incrementing counter. Get and Delete use that ID
// directly, so callers can cancel a queued item without scanning:
//
//	q := quick.NewQueue[func()]()
//	id := q.Enqueue(task)
//	q.Delete(id) // task will never be dequeued
//
// Insertion order is kept in a list.List and IDs map to its nodes, so every
// operation, including Pop and Dequeue, is O(1).
package quick
