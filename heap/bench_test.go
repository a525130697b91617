package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlds/heap"
)

// BenchmarkHeap_PushPop10000 measures a full fill-and-drain cycle of 10,000
// random integers. Complexity per cycle: O(n log n).
func BenchmarkHeap_PushPop10000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	input := make([]int, 10000)
	for i := range input {
		input[i] = rng.Int()
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := heap.NewMinOf[int]()
		for _, v := range input {
			h.Push(v)
		}
		for h.Len() > 0 {
			h.Pop()
		}
	}
}
