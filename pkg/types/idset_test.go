package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64Set_Basics(t *testing.T) {
	set := NewInt64Set(1, 2, 3)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))

	set.Add(4)
	assert.True(t, set.Contains(4))

	set.Remove(1)
	assert.False(t, set.Contains(1))
}

func TestInt64Set_ContainsAllAny(t *testing.T) {
	set := NewInt64Set(1, 2, 3)

	assert.True(t, set.ContainsAll([]int64{1, 3}))
	assert.False(t, set.ContainsAll([]int64{1, 5}))
	assert.True(t, set.ContainsAny([]int64{5, 2}))
	assert.False(t, set.ContainsAny([]int64{5, 6}))
	assert.True(t, set.ContainsAll(nil))
	assert.False(t, set.ContainsAny(nil))
}

func TestInt64Set_Intersect(t *testing.T) {
	a := NewInt64Set(1, 2, 3)
	b := NewInt64Set(2, 3, 4)

	assert.Equal(t, []int64{2, 3}, a.Intersect(b).ToSlice())
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(NewInt64Set(7)))
}

func TestInt64Set_ToSliceSorted(t *testing.T) {
	set := NewInt64Set(5, 1, 3)

	assert.Equal(t, []int64{1, 3, 5}, set.ToSlice())
	assert.Empty(t, NewInt64Set().ToSlice())
}
