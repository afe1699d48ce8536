package toggle_professional

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

func baseRequest(professionalID int64, requested int, selection []*int64, serviceIDs ...int64) *Request {
	return &Request{
		UserID:                 100,
		CompanyID:              1,
		ProfessionalID:         professionalID,
		ServiceIDs:             serviceIDs,
		Date:                   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		ProfessionalsRequested: requested,
		SelectionIDs:           selection,
	}
}

func TestExecute_AcceptsOptimalProfessional(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	uc := newUseCaseWith([]*domain.Professional{p1, p2}, 10, 20)

	// P1 уже выбран, добавляем P2 - он закрывает непокрытую услугу 20
	req := baseRequest(2, 2, []*int64{ptr.Ptr(int64(1)), nil}, 10, 20)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.False(t, resp.Removed)
	assert.True(t, resp.Selection.Contains(2))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Alternatives)
}

func TestExecute_RejectsRedundantWithAlternatives(t *testing.T) {
	// P3 умеет только уже покрытую услугу 10; P2 закрывает непокрытую 20
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	p3 := newProfessional(3, 10)
	uc := newUseCaseWith([]*domain.Professional{p1, p2, p3}, 10, 20)

	req := baseRequest(3, 2, []*int64{ptr.Ptr(int64(1)), nil}, 10, 20)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	// Выбор не изменён
	assert.False(t, resp.Selection.Contains(3))
	assert.Equal(t, 1, resp.Selection.FilledCount())
	require.Len(t, resp.Alternatives, 1)
	assert.Equal(t, int64(2), resp.Alternatives[0].ID)
}

func TestExecute_RejectsDisabledProfessional(t *testing.T) {
	// P2 не умеет ни одну из выбранных услуг
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 99)
	uc := newUseCaseWith([]*domain.Professional{p1, p2}, 10)

	req := baseRequest(2, 1, []*int64{nil}, 10)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Empty(t, resp.Alternatives)
	assert.Equal(t, 0, resp.Selection.FilledCount())
}

func TestExecute_ToggleOffBypassesGuard(t *testing.T) {
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)
	uc := newUseCaseWith([]*domain.Professional{p1, p2}, 10, 20)

	// Убираем P1 из полного выбора - guard не участвует, слот освобождается
	req := baseRequest(1, 2, []*int64{ptr.Ptr(int64(1)), ptr.Ptr(int64(2))}, 10, 20)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.True(t, resp.Removed)
	assert.False(t, resp.Selection.Contains(1))
	require.Len(t, resp.Selection, 2)
	assert.False(t, resp.Valid)
	assert.Equal(t, domain.CoverageUncovered, resp.Coverage[10])
}

func TestExecute_MultiModeLastSlotGuard(t *testing.T) {
	// requested = 3: пока свободно два слота, мастер с покрытой услугой проходит;
	// на последнем слоте такой же мастер отклоняется
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)
	p3 := newProfessional(3, 10)
	p4 := newProfessional(4, 20)
	pool := []*domain.Professional{p1, p2, p3, p4}
	uc := newUseCaseWith(pool, 10, 20)

	// Выбран только P1: осталось 2 слота, P2 доступен для добавления
	req := baseRequest(2, 3, []*int64{ptr.Ptr(int64(1)), nil, nil}, 10, 20)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Accepted)

	// Выбраны P1 и P2: остался один слот, P3 с той же услугой избыточен
	req = baseRequest(3, 3, []*int64{ptr.Ptr(int64(1)), ptr.Ptr(int64(2)), nil}, 10, 20)
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	require.Len(t, resp.Alternatives, 1)
	assert.Equal(t, int64(4), resp.Alternatives[0].ID)
}

func TestExecute_UnknownProfessional(t *testing.T) {
	uc := newUseCaseWith([]*domain.Professional{newProfessional(1, 10)}, 10)

	req := baseRequest(99, 1, []*int64{nil}, 10)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_SelectionWithUnknownProfessional(t *testing.T) {
	uc := newUseCaseWith([]*domain.Professional{newProfessional(1, 10)}, 10)

	req := baseRequest(1, 2, []*int64{ptr.Ptr(int64(77)), nil}, 10)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
