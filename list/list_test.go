package list_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/list"
)

func TestList_PushPopBothEnds(t *testing.T) {
	l := list.New(1, 2, 3)
	l.PushFront(0)
	l.PushBack(4)
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(l.All()))
	assert.Equal(t, []int{4, 3, 2, 1, 0}, slices.Collect(l.Backward()))

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, v)
	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, l.Front().Value)
	assert.Equal(t, 3, l.Back().Value)
}

func TestList_Empty(t *testing.T) {
	var l list.List[string]
	_, ok := l.PopBack()
	assert.False(t, ok)
	_, ok = l.PopFront()
	assert.False(t, ok)
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	l.PushBack("x")
	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestList_RemoveMiddle(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	mid := l.PushBack(2)
	l.PushBack(3)

	assert.True(t, l.Remove(mid))
	assert.False(t, l.Remove(mid), "second removal is rejected")
	assert.False(t, l.Remove(nil))
	assert.Equal(t, []int{1, 3}, slices.Collect(l.All()))
	assert.Equal(t, 3, l.Front().Next().Value)
	assert.Equal(t, 1, l.Back().Prev().Value)

	other := list.New(9)
	assert.False(t, l.Remove(other.Front()), "foreign node is rejected")
	assert.Equal(t, 1, other.Len())
}

func TestList_Clear(t *testing.T) {
	l := list.New("a", "b")
	n := l.Front()
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Remove(n))
	assert.Empty(t, slices.Collect(l.All()))
}
