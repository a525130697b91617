package heap_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/order"
)

// job is a composite record ordered by Priority only.
type job struct {
	Name     string
	Priority int
}

func byPriority(j job) float64 { return float64(j.Priority) }

// drain pops every element and returns them in pop order.
func drain[T any](h *heap.Heap[T]) []T {
	out := make([]T, 0, h.Len())
	for h.Len() > 0 {
		v, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// requireOrdered fails the test if any parent/child pair breaks the heap order.
func requireOrdered[T any](t *testing.T, h *heap.Heap[T]) {
	t.Helper()
	p, c := heap.Invariant(h)
	require.Equal(t, -1, p, "heap order violated between %d and %d", p, c)
}

func TestMinHeap_PopOrder(t *testing.T) {
	h := heap.NewMinOf[int]()
	for _, v := range []int{5, 3, 8, 1} {
		h.Push(v)
		requireOrdered(t, h)
	}
	assert.Equal(t, 4, h.Len())
	assert.Equal(t, []int{1, 3, 5, 8}, drain(h))
	assert.Equal(t, 0, h.Len())
}

func TestMaxHeap_PopOrder(t *testing.T) {
	h := heap.NewMaxOf[int]()
	for _, v := range []int{5, 3, 8, 1} {
		h.Push(v)
		requireOrdered(t, h)
	}
	assert.Equal(t, []int{8, 5, 3, 1}, drain(h))
}

func TestHeap_EmptyPop(t *testing.T) {
	for _, h := range []*heap.Heap[float64]{heap.NewMinOf[float64](), heap.NewMaxOf[float64]()} {
		v, ok := h.Pop()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.Equal(t, 0, h.Len())

		_, ok = h.Peek()
		assert.False(t, ok)
	}
}

func TestHeap_PushPopSingle(t *testing.T) {
	h := heap.NewMinOf[int]()
	h.Push(7)
	v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = h.Pop()
	assert.False(t, ok, "second pop must report empty")
	assert.Equal(t, 0, h.Len())
}

func TestHeap_Extractor(t *testing.T) {
	jobs := []job{
		{"backup", 3},
		{"deploy", 1},
		{"index", 5},
		{"alert", 0},
	}

	minH := heap.NewMin(byPriority)
	maxH := heap.NewMax(byPriority)
	for _, j := range jobs {
		minH.Push(j)
		maxH.Push(j)
	}

	names := func(js []job) []string {
		out := make([]string, len(js))
		for i, j := range js {
			out[i] = j.Name
		}
		return out
	}
	assert.Equal(t, []string{"alert", "deploy", "backup", "index"}, names(drain(minH)))
	assert.Equal(t, []string{"index", "backup", "deploy", "alert"}, names(drain(maxH)))
}

func TestHeap_Duplicates(t *testing.T) {
	h := heap.From(order.Ascending, order.Identity[int](), 2, 2, 1, 2, 1, 3, 3)
	requireOrdered(t, h)
	assert.Equal(t, []int{1, 1, 2, 2, 2, 3, 3}, drain(h))
}

func TestHeap_ValuesIsArrayOrder(t *testing.T) {
	h := heap.From(order.Ascending, order.Identity[int](), 5, 3, 8, 1)
	// Sift-up trace: [5] → [3 5] → [3 5 8] → [1 3 8 5].
	assert.Equal(t, []int{1, 3, 8, 5}, h.Values())
	assert.Equal(t, h.Values(), slices.Collect(h.All()))

	vals := h.Values()
	vals[0] = 100
	v, _ := h.Peek()
	assert.Equal(t, 1, v, "Values must return a copy")
}

func TestHeap_AllStopsEarly(t *testing.T) {
	h := heap.From(order.Descending, order.Identity[int](), 1, 2, 3, 4)
	seen := 0
	for range h.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestHeap_Clear(t *testing.T) {
	h := heap.From(order.Descending, order.Identity[int](), 4, 9, 1)
	h.Clear()
	assert.Equal(t, 0, h.Len())
	h.Push(3)
	v, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestHeap_ConstructorPanics(t *testing.T) {
	assert.PanicsWithValue(t, order.ErrNilExtractor.Error(), func() {
		heap.NewMin[job](nil)
	})
	assert.PanicsWithValue(t, order.ErrBadDirection.Error(), func() {
		heap.New(order.Direction(3), byPriority)
	})
	assert.Equal(t, order.Descending, heap.NewMax(byPriority).Direction())
}

// TestHeap_RandomizedAgainstSort interleaves pushes and pops and checks the
// tree order after every step, then compares the drain with a sorted copy.
func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, dir := range []order.Direction{order.Ascending, order.Descending} {
		t.Run(dir.String(), func(t *testing.T) {
			h := heap.New(dir, order.Identity[int]())
			var model []int
			pushes, pops := 0, 0

			for step := 0; step < 2000; step++ {
				if rng.Intn(3) == 0 {
					v, ok := h.Pop()
					if len(model) == 0 {
						require.False(t, ok)
						continue
					}
					require.True(t, ok)
					want := slices.Min(model)
					if dir == order.Descending {
						want = slices.Max(model)
					}
					require.Equal(t, want, v)
					model = slices.Delete(model, slices.Index(model, v), slices.Index(model, v)+1)
					pops++
				} else {
					v := rng.Intn(50) - 25
					h.Push(v)
					model = append(model, v)
					pushes++
				}
				requireOrdered(t, h)
				require.Equal(t, pushes-pops, h.Len())
			}

			got := drain(h)
			slices.Sort(model)
			if dir == order.Descending {
				slices.Reverse(model)
			}
			assert.Equal(t, model, got)
		})
	}
}
