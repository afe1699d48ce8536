package classify_selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/pkg/ptr"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

type fakeProfessionalRepo struct {
	professionals []*domain.Professional
}

func (f *fakeProfessionalRepo) ListByCompany(_ context.Context, _ int64, _ bool) ([]*domain.Professional, error) {
	return f.professionals, nil
}

type fakeCatalogRepo struct {
	services []domain.Service
}

func (f *fakeCatalogRepo) GetByIDs(_ context.Context, _ int64, serviceIDs []int64) ([]domain.Service, error) {
	requested := types.NewInt64Set(serviceIDs...)
	result := make([]domain.Service, 0, len(f.services))
	for _, s := range f.services {
		if requested.Contains(s.ID) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) ExistsByCompany(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

type fakeScheduleClient struct {
	workingIDs []int64
}

func (f *fakeScheduleClient) GetWorkingProfessionalsWithGracefulDegradation(_ context.Context, _ int64, _ time.Time) ([]int64, error) {
	return f.workingIDs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newProfessional(id int64, serviceIDs ...int64) *domain.Professional {
	return &domain.Professional{
		ID:                id,
		CompanyID:         1,
		Active:            true,
		OfferedServiceIDs: types.NewInt64Set(serviceIDs...),
	}
}

func newUseCaseWith(professionals []*domain.Professional, serviceIDs ...int64) *UseCase {
	services := make([]domain.Service, len(serviceIDs))
	ids := make([]int64, len(professionals))
	for i, id := range serviceIDs {
		services[i] = domain.Service{ID: id, CompanyID: 1, Active: true}
	}
	for i, p := range professionals {
		ids[i] = p.ID
	}
	return NewUseCase(
		&fakeProfessionalRepo{professionals: professionals},
		&fakeCatalogRepo{services: services},
		&fakeScheduleClient{workingIDs: ids},
		nopLogger{},
	)
}

func TestExecute_RecomputesStatesAndCoverage(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	p3 := newProfessional(3, 99)
	uc := newUseCaseWith([]*domain.Professional{p1, p2, p3}, 10, 20)

	req := &Request{
		UserID:                 100,
		CompanyID:              1,
		ServiceIDs:             []int64{10, 20},
		Date:                   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		ProfessionalsRequested: 2,
		SelectionIDs:           []*int64{ptr.Ptr(int64(1)), nil},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, domain.CoveragePartial, resp.Coverage[10])
	assert.Equal(t, domain.CoverageUncovered, resp.Coverage[20])

	states := make(map[int64]domain.ProfessionalState)
	for _, cp := range resp.Professionals {
		states[cp.Professional.ID] = cp.State
	}
	assert.Equal(t, domain.StateSelected, states[1])
	assert.Equal(t, domain.StateOptimal, states[2])
	assert.Equal(t, domain.StateDisabled, states[3])
}

func TestExecute_CompleteSelectionIsValid(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	uc := newUseCaseWith([]*domain.Professional{p1, p2}, 10, 20)

	req := &Request{
		UserID:                 100,
		CompanyID:              1,
		ServiceIDs:             []int64{10, 20},
		Date:                   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		ProfessionalsRequested: 2,
		SelectionIDs:           []*int64{ptr.Ptr(int64(1)), ptr.Ptr(int64(2))},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, domain.CoverageCovered, resp.Coverage[10])
	assert.Equal(t, domain.CoverageCovered, resp.Coverage[20])
}

func TestExecute_SelectionOutsidePoolFails(t *testing.T) {
	uc := newUseCaseWith([]*domain.Professional{newProfessional(1, 10)}, 10)

	req := &Request{
		UserID:                 100,
		CompanyID:              1,
		ServiceIDs:             []int64{10},
		Date:                   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		ProfessionalsRequested: 1,
		SelectionIDs:           []*int64{ptr.Ptr(int64(42))},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_RejectsOversizedSelection(t *testing.T) {
	uc := newUseCaseWith([]*domain.Professional{newProfessional(1, 10)}, 10)

	req := &Request{
		UserID:                 100,
		CompanyID:              1,
		ServiceIDs:             []int64{10},
		Date:                   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		ProfessionalsRequested: 1,
		SelectionIDs:           []*int64{ptr.Ptr(int64(1)), nil},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
