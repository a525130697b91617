package quick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/quick"
)

func TestStack_PushPopByID(t *testing.T) {
	s := quick.NewStack[string]()
	a := s.Push("a")
	b := s.Push("b")
	c := s.Push("c")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 3, s.Len())

	v, ok := s.Get(b)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.True(t, s.Delete(c))
	assert.False(t, s.Delete(c))
	assert.False(t, s.Has(c))

	id, top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, b, id)
	assert.Equal(t, "b", top)

	v, _ = s.Pop()
	assert.Equal(t, "b", v)
	v, _ = s.Pop()
	assert.Equal(t, "a", v)
	_, ok = s.Pop()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestQueue_DequeueSkipsDeleted(t *testing.T) {
	q := quick.NewQueue[int]()
	first := q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)

	assert.True(t, q.Delete(first))

	id, v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.True(t, q.Has(id))

	got := []int{}
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []int{20, 30}, got)

	_, _, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_ClearNeverReissues(t *testing.T) {
	q := quick.NewQueue[int]()
	old := q.Enqueue(1)
	q.Clear()
	assert.Equal(t, 0, q.Len())
	_, ok := q.Get(old)
	assert.False(t, ok)

	fresh := q.Enqueue(2)
	assert.Greater(t, uint64(fresh), uint64(old))
}

func TestQueue_AllInsertionOrder(t *testing.T) {
	q := quick.NewQueue[string]()
	ids := []quick.ID{q.Enqueue("x"), q.Enqueue("y")}

	var gotIDs []quick.ID
	var gotVals []string
	for id, v := range q.All() {
		gotIDs = append(gotIDs, id)
		gotVals = append(gotVals, v)
	}
	assert.Equal(t, ids, gotIDs)
	assert.Equal(t, []string{"x", "y"}, gotVals)
}
