package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_PlaceIntoFirstEmptySlot(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	selection := Selection{nil, p1, nil}

	result, ok := selection.Place(p2, 3)

	require.True(t, ok)
	assert.Equal(t, int64(2), result[0].ID)
	assert.Equal(t, int64(1), result[1].ID)
	assert.Nil(t, result[2])
	// Исходный выбор не мутируется
	assert.Nil(t, selection[0])
}

func TestSelection_PlaceAppendsWhenShorterThanRequested(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	selection := Selection{p1}

	result, ok := selection.Place(p2, 2)

	require.True(t, ok)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[1].ID)
}

func TestSelection_PlaceRejectsDuplicateAndOverflow(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	full := Selection{p1}

	_, ok := full.Place(p1, 1)
	assert.False(t, ok, "duplicate professional must not be placed")

	_, ok = full.Place(p2, 1)
	assert.False(t, ok, "full selection must not grow past the requested count")
}

func TestSelection_RemovePadsBackToRequestedLength(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	selection := Selection{p1, p2, nil}

	result := selection.Remove(1, 3)

	require.Len(t, result, 3)
	assert.Equal(t, int64(2), result[0].ID)
	assert.Nil(t, result[1])
	assert.Nil(t, result[2])
	assert.False(t, result.Contains(1))
}

func TestSelection_CoveredAndUncoveredServices(t *testing.T) {
	p1 := newProfessional(1, 10, 20)

	selection := Selection{p1, nil}
	serviceIDs := []int64{10, 20, 30}

	covered := selection.CoveredServices(serviceIDs)
	uncovered := selection.UncoveredServices(serviceIDs)

	assert.True(t, covered.Contains(10))
	assert.True(t, covered.Contains(20))
	assert.False(t, covered.Contains(30))
	assert.Equal(t, []int64{30}, uncovered.ToSlice())
}

func TestSelection_Counts(t *testing.T) {
	p1 := newProfessional(1, 10)

	selection := Selection{p1, nil, nil}

	assert.Equal(t, 1, selection.FilledCount())
	assert.Equal(t, 2, selection.RemainingSlots(3))
	assert.False(t, selection.IsComplete(3))
	assert.True(t, Selection{p1}.IsComplete(1))
}
