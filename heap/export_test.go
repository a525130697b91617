package heap

// Invariant reports the first (parent, child) index pair that violates the
// heap order, or (-1, -1) when the whole tree is ordered. White-box helper
// for heap_test.
func Invariant[T any](h *Heap[T]) (parent, child int) {
	for c := 1; c < len(h.storage); c++ {
		p := (c - 1) / 2
		if !h.holds(c, p) {
			return p, c
		}
	}

	return -1, -1
}
