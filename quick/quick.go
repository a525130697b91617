package quick

import (
	"iter"

	"github.com/katalvlaran/lvlds/list"
)

// ID identifies an element within the container that issued it.
// IDs start at 1; the zero ID is never issued.
type ID uint64

// entry pairs an element with its handle.
type entry[T any] struct {
	id   ID
	item T
}

// base holds the storage shared by Stack and Queue.
type base[T any] struct {
	order list.List[entry[T]]
	index map[ID]*list.Node[entry[T]]
	next  ID
}

func newBase[T any]() base[T] {
	return base[T]{index: make(map[ID]*list.Node[entry[T]])}
}

// push appends item at the back and returns its freshly issued ID.
func (b *base[T]) push(item T) ID {
	b.next++
	id := b.next
	b.index[id] = b.order.PushBack(entry[T]{id: id, item: item})

	return id
}

// take removes node n and returns its item.
func (b *base[T]) take(n *list.Node[entry[T]]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	b.order.Remove(n)
	delete(b.index, n.Value.id)

	return n.Value.item, true
}

// peek returns the ID and item held by n.
func peek[T any](n *list.Node[entry[T]]) (ID, T, bool) {
	if n == nil {
		var zero T
		return 0, zero, false
	}

	return n.Value.id, n.Value.item, true
}

// Len returns the number of stored elements.
func (b *base[T]) Len() int { return b.order.Len() }

// IsEmpty reports whether no element is stored.
func (b *base[T]) IsEmpty() bool { return b.order.Len() == 0 }

// Get returns the element stored under id.
func (b *base[T]) Get(id ID) (T, bool) {
	n, ok := b.index[id]
	if !ok {
		var zero T
		return zero, false
	}

	return n.Value.item, true
}

// Has reports whether id is currently stored.
func (b *base[T]) Has(id ID) bool {
	_, ok := b.index[id]
	return ok
}

// Delete removes the element stored under id and reports whether it existed.
func (b *base[T]) Delete(id ID) bool {
	n, ok := b.index[id]
	if !ok {
		return false
	}
	b.take(n)

	return true
}

// Clear removes every element. IDs keep incrementing; a cleared container
// never reissues an ID.
func (b *base[T]) Clear() {
	b.order.Clear()
	clear(b.index)
}

// All iterates over (ID, element) pairs in insertion order.
func (b *base[T]) All() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for e := range b.order.All() {
			if !yield(e.id, e.item) {
				return
			}
		}
	}
}

// Stack is a LIFO container with O(1) access by ID.
type Stack[T any] struct {
	base[T]
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{base: newBase[T]()}
}

// Push places item on top and returns its ID.
func (s *Stack[T]) Push(item T) ID { return s.push(item) }

// Pop removes and returns the most recently pushed element still stored.
func (s *Stack[T]) Pop() (T, bool) { return s.take(s.order.Back()) }

// Peek returns the ID and element on top without removing it.
func (s *Stack[T]) Peek() (ID, T, bool) { return peek(s.order.Back()) }

// Queue is a FIFO container with O(1) access by ID.
type Queue[T any] struct {
	base[T]
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{base: newBase[T]()}
}

// Enqueue appends item and returns its ID.
func (q *Queue[T]) Enqueue(item T) ID { return q.push(item) }

// Dequeue removes and returns the oldest element still stored.
func (q *Queue[T]) Dequeue() (T, bool) { return q.take(q.order.Front()) }

// Peek returns the ID and element at the front without removing it.
func (q *Queue[T]) Peek() (ID, T, bool) { return peek(q.order.Front()) }
