package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_InsertGet(t *testing.T) {
	a := NewArena[int]()
	h1 := a.Insert(10)
	h2 := a.Insert(20)

	v, ok := a.Get(h1)
	require.True(t, ok)
	assert.Equal(t, 10, *v)

	v, ok = a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, 20, *v)
	assert.Equal(t, 2, a.Len())
}

func TestArena_ZeroHandleInvalid(t *testing.T) {
	a := NewArena[string]()
	a.Insert("x")

	var h Handle
	assert.True(t, h.IsZero())
	_, ok := a.Get(h)
	assert.False(t, ok)
}

func TestArena_StaleHandleAfterReuse(t *testing.T) {
	a := NewArena[int]()
	old := a.Insert(1)
	require.True(t, a.Remove(old))
	assert.False(t, a.Remove(old))

	fresh := a.Insert(2)
	// слот переиспользован, но поколение другое
	assert.Equal(t, old.index, fresh.index)
	assert.NotEqual(t, old, fresh)

	_, ok := a.Get(old)
	assert.False(t, ok)
	v, ok := a.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, 2, *v)
}

func TestArena_MutateThroughPointer(t *testing.T) {
	type hp struct{ Value int }
	a := NewArena[hp]()
	h := a.Insert(hp{Value: 100})

	v, _ := a.Get(h)
	v.Value -= 25

	v, _ = a.Get(h)
	assert.Equal(t, 75, v.Value)
}

func TestArena_EachAndRemoveIf(t *testing.T) {
	a := NewArena[int]()
	for i := 1; i <= 5; i++ {
		a.Insert(i)
	}

	removed := a.RemoveIf(func(v *int) bool { return *v%2 == 0 })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, a.Len())

	var seen []int
	a.Each(func(_ Handle, v *int) bool {
		seen = append(seen, *v)
		return true
	})
	assert.Equal(t, []int{1, 3, 5}, seen)
}

func TestArena_EachStopsEarly(t *testing.T) {
	a := NewArena[int]()
	a.Insert(1)
	a.Insert(2)
	a.Insert(3)

	calls := 0
	a.Each(func(_ Handle, _ *int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestArena_Clear(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(1)
	a.Insert(2)

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Contains(h))

	h2 := a.Insert(3)
	assert.True(t, a.Contains(h2))
	assert.False(t, a.Contains(h))
}
