package pqueue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvlds/heap"
)

// Queue is a bucket priority queue. Construct with New.
type Queue[T any] struct {
	opts       Options
	buckets    map[int][]T
	priorities *heap.Heap[int] // each non-empty priority exactly once
	size       int
}

// New returns an empty Queue configured by opts.
func New[T any](opts ...Option) *Queue[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T]{
		opts:       cfg,
		buckets:    make(map[int][]T),
		priorities: heap.NewMaxOf[int](),
	}
}

// MaxPriority returns the highest accepted priority.
func (q *Queue[T]) MaxPriority() int { return q.opts.MaxPriority }

// Push adds value to the bucket of the given priority.
// Returns ErrPriorityRange (wrapped) when priority < 0 or > MaxPriority.
// Complexity: O(1), or O(log P) when the priority was empty.
func (q *Queue[T]) Push(priority int, value T) error {
	if priority < 0 || priority > q.opts.MaxPriority {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrPriorityRange, priority, q.opts.MaxPriority)
	}

	bucket := q.buckets[priority]
	if len(bucket) == 0 {
		q.priorities.Push(priority)
	}
	q.buckets[priority] = append(bucket, value)
	q.size++

	return nil
}

// Pop removes and returns the element pushed last to the highest non-empty
// priority, or the zero value and false when the queue is empty.
// Complexity: O(1), or O(log P) when a bucket empties.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	p, ok := q.priorities.Peek()
	if !ok {
		return zero, false
	}

	bucket := q.buckets[p]
	last := len(bucket) - 1
	value := bucket[last]
	bucket[last] = zero
	bucket = bucket[:last]
	q.size--

	if len(bucket) == 0 {
		delete(q.buckets, p)
		q.priorities.Pop()
	} else {
		q.buckets[p] = bucket
	}

	return value, true
}

// Poll returns the element Pop would return, without removing it.
func (q *Queue[T]) Poll() (T, bool) {
	p, ok := q.priorities.Peek()
	if !ok {
		var zero T
		return zero, false
	}
	bucket := q.buckets[p]

	return bucket[len(bucket)-1], true
}

// Len returns the total number of queued elements. Complexity: O(1).
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no element.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// All iterates over (priority, bucket) pairs from the highest priority down.
// Buckets list elements in push order and must not be modified.
// Complexity: O(P log P) to order the priorities.
func (q *Queue[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		keys := lo.Keys(q.buckets)
		slices.Sort(keys)
		for _, p := range lo.Reverse(keys) {
			if !yield(p, q.buckets[p]) {
				return
			}
		}
	}
}
