package minmax

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvlds/order"
)

// none marks the absence of a tracked extremum.
const none = -1

// Stack is a LIFO stack that tracks the most extreme element under dir.
// The zero value is not usable; construct with New or one of the
// MinStack / MaxStack constructors.
type Stack[T any] struct {
	storage     []T                // bottom at 0, top at len-1
	key         order.Extractor[T] // element → numeric key
	dir         order.Direction    // Ascending tracks the minimum, Descending the maximum
	extremum    int                // index of the earliest element tied with the extremum, or none
	occurrences int                // number of stored elements tied with the extremum
}

// New creates an empty tracking stack ordered by key in direction dir.
// It panics with order.ErrBadDirection or order.ErrNilExtractor on invalid input.
func New[T any](dir order.Direction, key order.Extractor[T]) *Stack[T] {
	order.Must(dir, key)

	return &Stack[T]{key: key, dir: dir, extremum: none}
}

// Direction reports which extremum the stack tracks.
func (s *Stack[T]) Direction() order.Direction { return s.dir }

// Len returns the number of stored elements. Complexity: O(1).
func (s *Stack[T]) Len() int { return len(s.storage) }

// Occurrences returns how many stored elements tie the extremum's key.
// It is 0 exactly when the stack is empty.
func (s *Stack[T]) Occurrences() int { return s.occurrences }

// Extremum returns the tracked element, or the zero value and false when
// the stack is empty.
func (s *Stack[T]) Extremum() (T, bool) {
	if s.extremum == none {
		var zero T
		return zero, false
	}

	return s.storage[s.extremum], true
}

// Push places value on top of the stack and updates the extremum.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(value T) {
	s.storage = append(s.storage, value)
	top := len(s.storage) - 1

	if s.extremum == none {
		s.extremum, s.occurrences = top, 1
		return
	}

	k, current := s.key(value), s.key(s.storage[s.extremum])
	switch {
	case tie(k, current):
		s.occurrences++
	case s.beats(k, current):
		s.extremum, s.occurrences = top, 1
	}
}

// Pop removes and returns the top element, or the zero value and false when
// the stack is empty.
// Complexity: O(1), or O(n) when the last occurrence of the extremum leaves.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.storage)
	if n == 0 {
		return zero, false
	}

	top := n - 1
	value := s.storage[top]

	// The tracked index is the earliest tie: when it leaves, no tie is left.
	last := top == s.extremum
	tied := !last && tie(s.key(value), s.key(s.storage[s.extremum]))

	s.storage[top] = zero
	s.storage = s.storage[:top]

	switch {
	case last:
		s.rescan()
	case tied:
		s.occurrences--
	}

	return value, true
}

// Peek returns the top element without removing it, or the zero value and
// false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.storage) == 0 {
		var zero T
		return zero, false
	}

	return s.storage[len(s.storage)-1], true
}

// Clear removes every element, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	clear(s.storage)
	s.storage = s.storage[:0]
	s.extremum, s.occurrences = none, 0
}

// All iterates over the stored elements from bottom to top.
// The stack must not be mutated during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.storage {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the stored elements from bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.storage))
	copy(out, s.storage)

	return out
}

// rescan recomputes the extremum and its tie count from the whole storage.
// Any remaining element may be the new extremum, so every one is inspected.
func (s *Stack[T]) rescan() {
	s.extremum, s.occurrences = none, 0

	var best float64
	for i, v := range s.storage {
		k := s.key(v)
		switch {
		case s.extremum == none:
			s.extremum, s.occurrences, best = i, 1, k
		case tie(k, best):
			s.occurrences++
		case s.beats(k, best):
			s.extremum, s.occurrences, best = i, 1, k
		}
	}
}

// beats reports whether key k should replace the current extremum key.
// NaN ranks after every other key in both directions, so it is tracked only
// while nothing but NaN is stored.
func (s *Stack[T]) beats(k, current float64) bool {
	if math.IsNaN(current) {
		return !math.IsNaN(k)
	}

	return s.dir.Before(k, current)
}

// tie reports whether a and b rank equally. All NaN keys tie with each other.
func tie(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
