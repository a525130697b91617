package order

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors raised (via panic) by constructors that take ordering primitives.
var (
	// ErrNilExtractor indicates that a nil Extractor was supplied.
	ErrNilExtractor = errors.New("order: value extractor is nil")

	// ErrBadDirection indicates a Direction other than Ascending or Descending.
	ErrBadDirection = errors.New("order: unknown direction")
)

// Number is satisfied by every built-in integer and floating-point type.
// Containers use it to offer identity-keyed constructors for numeric elements.
type Number interface {
	constraints.Integer | constraints.Float
}

// Extractor maps an element to the numeric key used for all comparisons.
// It must be deterministic: the same element must always yield the same key
// while it is stored in a container.
type Extractor[T any] func(T) float64

// Identity returns the Extractor for numeric element types: every value is
// its own key.
func Identity[N Number]() Extractor[N] {
	return func(v N) float64 { return float64(v) }
}

// Direction selects which end of the key ordering a container favors.
type Direction int

const (
	// Ascending favors smaller keys (min ordering).
	Ascending Direction = iota

	// Descending favors larger keys (max ordering).
	Descending
)
