package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffService/pkg/types"
)

func newService(id int64) Service {
	return Service{ID: id, CompanyID: 1, Active: true}
}

func newServices(ids ...int64) []Service {
	services := make([]Service, len(ids))
	for i, id := range ids {
		services[i] = newService(id)
	}
	return services
}

func newProfessional(id int64, serviceIDs ...int64) *Professional {
	return &Professional{
		ID:                id,
		CompanyID:         1,
		Active:            true,
		OfferedServiceIDs: types.NewInt64Set(serviceIDs...),
	}
}

func TestEstimateOptimalCount(t *testing.T) {
	tests := []struct {
		name          string
		services      []Service
		professionals []*Professional
		want          int
	}{
		{
			name:          "no services",
			services:      nil,
			professionals: []*Professional{newProfessional(1, 10)},
			want:          1,
		},
		{
			name:          "no professionals",
			services:      newServices(10, 20),
			professionals: nil,
			want:          1,
		},
		{
			name:          "single service always needs one",
			services:      newServices(10),
			professionals: []*Professional{newProfessional(1, 10), newProfessional(2, 10)},
			want:          1,
		},
		{
			name:     "universal professional needs one",
			services: newServices(10, 20, 30),
			professionals: []*Professional{
				newProfessional(1, 10),
				newProfessional(2, 10, 20, 30),
			},
			want: 1,
		},
		{
			name:     "two services with shared provider pool",
			services: newServices(10, 20),
			professionals: []*Professional{
				newProfessional(1, 10),
				newProfessional(2, 20),
				newProfessional(3, 10),
			},
			want: 2,
		},
		{
			name:     "disjoint pair with single professional keeps hard lower bound",
			services: newServices(10, 20),
			professionals: []*Professional{
				newProfessional(1, 10),
			},
			want: 2,
		},
		{
			name:     "three services and three capable professionals recommend one per service",
			services: newServices(10, 20, 30),
			professionals: []*Professional{
				newProfessional(1, 10, 20),
				newProfessional(2, 20, 30),
				newProfessional(3, 10, 30),
			},
			want: 3,
		},
		{
			name:     "three services but only two professionals fall back to two",
			services: newServices(10, 20, 30),
			professionals: []*Professional{
				newProfessional(1, 10, 20),
				newProfessional(2, 20, 30),
			},
			want: 2,
		},
		{
			name:     "uncoverable service disables the per-service refinement",
			services: newServices(10, 20, 30),
			professionals: []*Professional{
				newProfessional(1, 10),
				newProfessional(2, 20),
				newProfessional(3, 10, 20),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateOptimalCount(tt.services, tt.professionals)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoSelect_NoExclusiveProviders(t *testing.T) {
	// Обе услуги выполняются двумя мастерами - эксклюзивных исполнителей нет
	services := newServices(10)
	professionals := []*Professional{newProfessional(1, 10), newProfessional(2, 10)}

	estimated := EstimateOptimalCount(services, professionals)
	require.Equal(t, 1, estimated)

	count, selection := AutoSelect(services, professionals, estimated)

	assert.Equal(t, 1, count)
	require.Len(t, selection, 1)
	assert.Nil(t, selection[0])
	assert.Equal(t, 0, selection.FilledCount())
}

func TestAutoSelect_ExclusiveProvidersForceSelected(t *testing.T) {
	// P1 - единственный исполнитель услуги 10, P2 - единственный исполнитель услуги 20
	services := newServices(10, 20)
	professionals := []*Professional{newProfessional(1, 10), newProfessional(2, 20)}

	estimated := EstimateOptimalCount(services, professionals)
	require.Equal(t, 2, estimated)

	count, selection := AutoSelect(services, professionals, estimated)

	assert.Equal(t, 2, count)
	require.Len(t, selection, 2)
	require.NotNil(t, selection[0])
	require.NotNil(t, selection[1])
	assert.Equal(t, int64(1), selection[0].ID)
	assert.Equal(t, int64(2), selection[1].ID)
	assert.True(t, IsValidSelection(services, selection, count))
}

func TestAutoSelect_CountGrowsToFitExclusives(t *testing.T) {
	// Три эксклюзивных мастера при рекомендации в два - количество слотов растет до трех
	services := newServices(10, 20, 30)
	professionals := []*Professional{
		newProfessional(1, 10),
		newProfessional(2, 20),
		newProfessional(3, 30),
	}

	count, selection := AutoSelect(services, professionals, 2)

	assert.Equal(t, 3, count)
	assert.Equal(t, 3, selection.FilledCount())
}

func TestAutoSelect_ExclusiveProviderNotDuplicated(t *testing.T) {
	// P1 - эксклюзивный исполнитель сразу двух услуг, в выбор попадает один раз
	services := newServices(10, 20)
	professionals := []*Professional{newProfessional(1, 10, 20), newProfessional(2, 20)}

	count, selection := AutoSelect(services, professionals, 1)

	assert.Equal(t, 1, count)
	require.Len(t, selection, 1)
	require.NotNil(t, selection[0])
	assert.Equal(t, int64(1), selection[0].ID)
}

func TestClassify_SelectedAndDisabled(t *testing.T) {
	services := newServices(10, 20)
	selected := newProfessional(1, 10)
	noCapabilities := newProfessional(2, 99)
	missingSet := &Professional{ID: 3, CompanyID: 1, Active: true}

	selection := Selection{selected, nil}

	assert.Equal(t, StateSelected, Classify(selected, services, selection, 2))
	assert.Equal(t, StateDisabled, Classify(noCapabilities, services, selection, 2))
	// Мастер без набора услуг (некорректные данные) деградирует до disabled
	assert.Equal(t, StateDisabled, Classify(missingSet, services, selection, 2))
}

func TestClassify_SingleMode(t *testing.T) {
	// Услуга одна, оба мастера её выполняют - оба оптимальны до выбора
	services := newServices(10)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	selection := NewSelection(1)
	assert.Equal(t, StateOptimal, Classify(p1, services, selection, 1))
	assert.Equal(t, StateOptimal, Classify(p2, services, selection, 1))
}

func TestClassify_RedundantOnceFullyCovered(t *testing.T) {
	// P3 умеет всё и выбран единственным - P1 и P2 избыточны
	services := newServices(10, 20, 30)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	p3 := newProfessional(3, 10, 20, 30)

	selection := Selection{p3}

	assert.True(t, IsValidSelection(services, selection, 1))
	assert.Equal(t, StateRedundant, Classify(p1, services, selection, 1))
	assert.Equal(t, StateRedundant, Classify(p2, services, selection, 1))
}

func TestClassify_MultiModePhases(t *testing.T) {
	// requested = 3: пока покрытия нет, любой умеющий мастер оптимален;
	// после появления покрытия мастера только с покрытыми услугами берегут последний слот
	services := newServices(10, 20)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)
	p3 := newProfessional(3, 10)
	p4 := newProfessional(4, 20)

	// Фаза 1: никто не выбран
	empty := NewSelection(3)
	assert.Equal(t, StateOptimal, Classify(p1, services, empty, 3))
	assert.Equal(t, StateOptimal, Classify(p4, services, empty, 3))

	// Выбран P1: услуга 10 покрыта, осталось 2 слота - P2 ещё пригодится
	one := Selection{p1, nil, nil}
	assert.Equal(t, StateAvailable, Classify(p2, services, one, 3))
	// P4 закрывает непокрытую услугу 20 - оптимален
	assert.Equal(t, StateOptimal, Classify(p4, services, one, 3))

	// Выбраны P1 и P2: остался один слот - третий мастер только с услугой 10 избыточен
	two := Selection{p1, p2, nil}
	assert.Equal(t, StateRedundant, Classify(p3, services, two, 3))
	assert.Equal(t, StateOptimal, Classify(p4, services, two, 3))
}

func TestClassify_MultiModeMixedCapabilityIsOptimal(t *testing.T) {
	// Кандидат умеет и покрытую, и непокрытую услугу - считается оптимальным,
	// даже если большая часть его умений избыточна
	services := newServices(10, 20, 30)
	selected := newProfessional(1, 10)
	mixed := newProfessional(2, 10, 20)

	selection := Selection{selected, nil, nil}

	assert.Equal(t, StateOptimal, Classify(mixed, services, selection, 3))
}

func TestClassify_MultiModeAllCoveredLeavesAvailable(t *testing.T) {
	// Все услуги покрыты, но слоты остались - умеющие мастера остаются доступными
	services := newServices(10)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	selection := Selection{p1, nil, nil}

	assert.Equal(t, StateAvailable, Classify(p2, services, selection, 3))
}

func TestClassify_NotSelectedNeverSelected(t *testing.T) {
	services := newServices(10, 20)
	pool := []*Professional{
		newProfessional(1, 10),
		newProfessional(2, 20),
		newProfessional(3, 10, 20),
	}
	selection := Selection{pool[0], nil}

	for _, p := range pool[1:] {
		state := Classify(p, services, selection, 2)
		assert.NotEqual(t, StateSelected, state, "professional %d is not in the selection", p.ID)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	services := newServices(10, 20, 30)
	candidate := newProfessional(2, 10, 20)
	selection := Selection{newProfessional(1, 10), nil, nil}

	first := Classify(candidate, services, selection, 3)
	second := Classify(candidate, services, selection, 3)

	assert.Equal(t, first, second)
}

func TestClassifyAll(t *testing.T) {
	services := newServices(10, 20)
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	p3 := newProfessional(3, 99)

	selection := Selection{p1, nil}
	states := ClassifyAll([]*Professional{p1, p2, p3}, services, selection, 2)

	assert.Equal(t, StateSelected, states[1])
	assert.Equal(t, StateOptimal, states[2])
	assert.Equal(t, StateDisabled, states[3])
}

func TestAlternatives(t *testing.T) {
	services := newServices(10, 20)
	selected := newProfessional(1, 10)
	redundant := newProfessional(2, 10)
	helpful := newProfessional(3, 20)
	unrelated := newProfessional(4, 99)

	pool := []*Professional{selected, redundant, helpful, unrelated}
	selection := Selection{selected, nil}

	alternatives := Alternatives(redundant, pool, services, selection)

	require.Len(t, alternatives, 1)
	assert.Equal(t, int64(3), alternatives[0].ID)
}

func TestAlternatives_EmptyWhenEverythingCovered(t *testing.T) {
	services := newServices(10)
	selected := newProfessional(1, 10)
	redundant := newProfessional(2, 10)

	selection := Selection{selected}
	alternatives := Alternatives(redundant, []*Professional{selected, redundant}, services, selection)

	assert.Empty(t, alternatives)
}
