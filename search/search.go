// Package search implements binary search over slices sorted ascending by
// a numeric key.
//
// All functions assume the input is sorted ascending by the same key they
// are given; on unsorted input the result is unspecified. Time: O(log n).
package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlds/order"
)

// Index returns the position of the first element of sorted whose key
// equals key(target), or -1 when there is none.
// It panics with order.ErrNilExtractor when key is nil.
func Index[T any](sorted []T, target T, key order.Extractor[T]) int {
	order.Must(order.Ascending, key)

	i, found := slices.BinarySearchFunc(sorted, key(target), func(e T, want float64) int {
		return cmp.Compare(key(e), want)
	})
	if !found {
		return -1
	}

	return i
}

// Binary reports whether sorted holds an element whose key equals key(target).
func Binary[T any](sorted []T, target T, key order.Extractor[T]) bool {
	return Index(sorted, target, key) >= 0
}

// Contains reports whether target occurs in the ascending slice sorted.
func Contains[N order.Number](sorted []N, target N) bool {
	return Index(sorted, target, order.Identity[N]()) >= 0
}
