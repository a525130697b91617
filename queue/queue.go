// Package queue implements a FIFO queue on top of list.List, so Enqueue and
// Dequeue are both O(1).
package queue

import (
	"iter"

	"github.com/katalvlaran/lvlds/list"
)

// Queue is a first-in-first-out container. The zero value is ready to use.
type Queue[T any] struct {
	items list.List[T]
}

// New returns a queue holding items, the first one at the front.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, it := range items {
		q.Enqueue(it)
	}

	return q
}

// Enqueue appends v at the back and returns the new length.
func (q *Queue[T]) Enqueue(v T) int {
	q.items.PushBack(v)

	return q.items.Len()
}

// Dequeue removes and returns the front element; false when empty.
func (q *Queue[T]) Dequeue() (T, bool) { return q.items.PopFront() }

// Peek returns the front element without removing it; false when empty.
func (q *Queue[T]) Peek() (T, bool) {
	front := q.items.Front()
	if front == nil {
		var zero T
		return zero, false
	}

	return front.Value, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.items.Len() }

// All iterates from front to back.
func (q *Queue[T]) All() iter.Seq[T] { return q.items.All() }
