package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCapabilityIndex(t *testing.T) {
	services := newServices(10, 20, 30)
	p1 := newProfessional(1, 10, 20)
	p2 := newProfessional(2, 20)

	idx := BuildCapabilityIndex(services, []*Professional{p1, p2})

	require.Len(t, idx.Providers(10), 1)
	require.Len(t, idx.Providers(20), 2)
	assert.Empty(t, idx.Providers(30))
	assert.False(t, idx.EveryServiceHasProvider())
}

func TestCapabilityIndex_HasDisjointPair(t *testing.T) {
	services := newServices(10, 20)

	shared := BuildCapabilityIndex(services, []*Professional{newProfessional(1, 10, 20)})
	assert.False(t, shared.HasDisjointPair())

	split := BuildCapabilityIndex(services, []*Professional{
		newProfessional(1, 10),
		newProfessional(2, 20),
	})
	assert.True(t, split.HasDisjointPair())
}

func TestCapabilityIndex_ExclusiveProviders(t *testing.T) {
	services := newServices(10, 20, 30)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20, 30)
	p3 := newProfessional(3, 30)

	idx := BuildCapabilityIndex(services, []*Professional{p1, p2, p3})

	exclusives := idx.ExclusiveProviders()

	// P1 эксклюзивен для услуги 10, P2 - для услуги 20; услугу 30 умеют двое
	require.Len(t, exclusives, 2)
	assert.Equal(t, int64(1), exclusives[0].ID)
	assert.Equal(t, int64(2), exclusives[1].ID)
}

func TestCoverageFor(t *testing.T) {
	services := newServices(10, 20)
	p1 := newProfessional(1, 10)

	// Услуга покрыта, но выбор не заполнен - partial
	incomplete := Selection{p1, nil}
	coverage := CoverageFor(services, incomplete, 2)
	assert.Equal(t, CoveragePartial, coverage[10])
	assert.Equal(t, CoverageUncovered, coverage[20])

	// Выбор заполнен - покрытая услуга становится covered
	p2 := newProfessional(2, 20)
	complete := Selection{p1, p2}
	coverage = CoverageFor(services, complete, 2)
	assert.Equal(t, CoverageCovered, coverage[10])
	assert.Equal(t, CoverageCovered, coverage[20])
}

func TestCoverageFor_ServiceNobodyOffersStaysUncovered(t *testing.T) {
	services := newServices(10, 99)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	selection := Selection{p1, p2}
	coverage := CoverageFor(services, selection, 2)

	assert.Equal(t, CoverageCovered, coverage[10])
	assert.Equal(t, CoverageUncovered, coverage[99])
	assert.False(t, IsValidSelection(services, selection, 2))
}

func TestIsValidSelection(t *testing.T) {
	services := newServices(10, 20)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	assert.True(t, IsValidSelection(services, Selection{p1, p2}, 2))

	// Неполный выбор невалиден, даже если услуги покрыты
	universal := newProfessional(3, 10, 20)
	assert.False(t, IsValidSelection(services, Selection{universal, nil}, 2))

	// Полный выбор с непокрытой услугой невалиден
	assert.False(t, IsValidSelection(services, Selection{p1, newProfessional(4, 10)}, 2))
}
