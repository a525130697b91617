// Package stack implements a plain slice-backed LIFO stack.
package stack

import "iter"

// Stack is a last-in-first-out container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// New returns a stack with items pushed in order (the last one on top).
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	s.items = append(s.items, items...)

	return s
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element; false when empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	v := s.items[top]
	s.items[top] = zero
	s.items = s.items[:top]

	return v, true
}

// Peek returns the top element without removing it; false when empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// All iterates from bottom to top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
