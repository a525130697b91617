// Package list implements a generic doubly linked list with O(1) insertion
// and removal at both ends and at any held Node.
package list

import "iter"

// Node is an element of a List. A Node stays valid until it is removed.
type Node[T any] struct {
	Value T

	prev, next *Node[T]
	list       *List[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// New returns a list holding items in order.
func New[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, it := range items {
		l.PushBack(it)
	}

	return l
}

// Len returns the number of nodes. Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// Front returns the first node or nil.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node or nil.
func (l *List[T]) Back() *Node[T] { return l.tail }

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, prev: l.tail, list: l}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++

	return n
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.head, list: l}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++

	return n
}

// PopBack removes and returns the last value, or false when empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.Remove(n)

	return n.Value, true
}

// PopFront removes and returns the first value, or false when empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.Remove(n)

	return n.Value, true
}

// Remove unlinks n from l. It reports false if n is nil or does not belong
// to l (including nodes already removed).
func (l *List[T]) Remove(n *Node[T]) bool {
	if n == nil || n.list != l {
		return false
	}
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next, n.list = nil, nil, nil
	l.size--

	return true
}

// Clear drops every node.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// All iterates over values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward iterates over values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}
