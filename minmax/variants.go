package minmax

import "github.com/katalvlaran/lvlds/order"

// MinStack is a Stack that tracks its smallest element.
type MinStack[T any] struct {
	*Stack[T]
}

// NewMinStack creates an empty MinStack ordered by key.
func NewMinStack[T any](key order.Extractor[T]) *MinStack[T] {
	return &MinStack[T]{Stack: New(order.Ascending, key)}
}

// NewMinStackOf creates an empty MinStack of numbers keyed by their own value.
func NewMinStackOf[N order.Number]() *MinStack[N] {
	return NewMinStack(order.Identity[N]())
}

// Min returns the element with the smallest key. When several elements tie,
// the one pushed earliest is returned. Returns false on an empty stack.
func (s *MinStack[T]) Min() (T, bool) { return s.Extremum() }

// MaxStack is a Stack that tracks its largest element.
type MaxStack[T any] struct {
	*Stack[T]
}

// NewMaxStack creates an empty MaxStack ordered by key.
func NewMaxStack[T any](key order.Extractor[T]) *MaxStack[T] {
	return &MaxStack[T]{Stack: New(order.Descending, key)}
}

// NewMaxStackOf creates an empty MaxStack of numbers keyed by their own value.
func NewMaxStackOf[N order.Number]() *MaxStack[N] {
	return NewMaxStack(order.Identity[N]())
}

// Max returns the element with the largest key. When several elements tie,
// the one pushed earliest is returned. Returns false on an empty stack.
func (s *MaxStack[T]) Max() (T, bool) { return s.Extremum() }
