package heap

import (
	"iter"

	"github.com/katalvlaran/lvlds/order"
)

// Heap is a binary heap of T ordered by key under dir.
// The zero value is not usable; construct with New, NewMin, NewMax,
// NewMinOf, NewMaxOf or From.
type Heap[T any] struct {
	storage []T                // complete binary tree, root at 0
	key     order.Extractor[T] // element → numeric key
	dir     order.Direction    // Ascending = min-heap, Descending = max-heap
}

// New creates an empty heap ordered by key in direction dir.
// It panics with order.ErrBadDirection or order.ErrNilExtractor on invalid input.
func New[T any](dir order.Direction, key order.Extractor[T]) *Heap[T] {
	order.Must(dir, key)

	return &Heap[T]{key: key, dir: dir}
}

// NewMin creates an empty min-heap: Pop yields the smallest key first.
func NewMin[T any](key order.Extractor[T]) *Heap[T] {
	return New(order.Ascending, key)
}

// NewMax creates an empty max-heap: Pop yields the largest key first.
func NewMax[T any](key order.Extractor[T]) *Heap[T] {
	return New(order.Descending, key)
}

// NewMinOf creates an empty min-heap of numbers keyed by their own value.
func NewMinOf[N order.Number]() *Heap[N] {
	return New(order.Ascending, order.Identity[N]())
}

// NewMaxOf creates an empty max-heap of numbers keyed by their own value.
func NewMaxOf[N order.Number]() *Heap[N] {
	return New(order.Descending, order.Identity[N]())
}

// From creates a heap and pushes values into it in the given order.
// Complexity: O(n log n).
func From[T any](dir order.Direction, key order.Extractor[T], values ...T) *Heap[T] {
	h := New(dir, key)
	h.storage = make([]T, 0, len(values))
	for _, v := range values {
		h.Push(v)
	}

	return h
}

// Direction reports the ordering the heap was built with.
func (h *Heap[T]) Direction() order.Direction { return h.dir }

// Len returns the number of stored elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.storage) }

// Push adds value and sifts it up until its parent no longer needs to swap
// with it or it reaches the root.
// Complexity: O(log n).
func (h *Heap[T]) Push(value T) {
	h.storage = append(h.storage, value)

	curr := len(h.storage) - 1
	for curr > 0 {
		parent := (curr - 1) / 2
		if h.holds(curr, parent) {
			break
		}
		h.swap(curr, parent)
		curr = parent
	}
}

// Pop removes and returns the root (the most extreme key).
// On an empty heap it returns the zero value and false.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.storage)
	if n == 0 {
		return zero, false
	}

	// Move the root to the tail, detach it, and clear the vacated slot so the
	// backing array does not pin the popped element.
	last := n - 1
	h.swap(0, last)
	value := h.storage[last]
	h.storage[last] = zero
	h.storage = h.storage[:last]

	h.siftDown(0)

	return value, true
}

// Peek returns the root without removing it, or the zero value and false
// when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.storage) == 0 {
		var zero T
		return zero, false
	}

	return h.storage[0], true
}

// Clear removes every element, keeping the allocated capacity.
func (h *Heap[T]) Clear() {
	clear(h.storage)
	h.storage = h.storage[:0]
}

// All iterates over the stored elements in root-first array order.
// This is not sorted order. The heap must not be mutated during iteration.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.storage {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of storage in root-first array order.
func (h *Heap[T]) Values() []T {
	out := make([]T, len(h.storage))
	copy(out, h.storage)

	return out
}

// siftDown moves the element at curr towards the leaves until neither child
// is strictly more extreme than it.
func (h *Heap[T]) siftDown(curr int) {
	for {
		left := 2*curr + 1
		if left >= len(h.storage) {
			return
		}
		child := h.preferredChild(left, left+1)
		if h.holds(child, curr) {
			return
		}
		h.swap(child, curr)
		curr = child
	}
}

// holds reports whether the heap order already holds between child i and
// parent j, i.e. storage[i] is not strictly more extreme than storage[j].
func (h *Heap[T]) holds(i, j int) bool {
	return !h.dir.Before(h.key(h.storage[i]), h.key(h.storage[j]))
}

// preferredChild returns right when it exists and is strictly more extreme
// than left; otherwise left. Ties go to left.
func (h *Heap[T]) preferredChild(left, right int) int {
	if right < len(h.storage) && h.dir.Before(h.key(h.storage[right]), h.key(h.storage[left])) {
		return right
	}

	return left
}

func (h *Heap[T]) swap(i, j int) {
	h.storage[i], h.storage[j] = h.storage[j], h.storage[i]
}
