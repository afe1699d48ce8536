package plan_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

type fakeProfessionalRepo struct {
	professionals []*domain.Professional
	err           error
}

func (f *fakeProfessionalRepo) ListByCompany(_ context.Context, _ int64, _ bool) ([]*domain.Professional, error) {
	return f.professionals, f.err
}

type fakeCatalogRepo struct {
	services []domain.Service
	exists   bool
	err      error
}

func (f *fakeCatalogRepo) GetByIDs(_ context.Context, _ int64, serviceIDs []int64) ([]domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
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
	return f.exists, nil
}

type fakeScheduleClient struct {
	workingIDs []int64
	err        error
}

func (f *fakeScheduleClient) GetWorkingProfessionalsWithGracefulDegradation(_ context.Context, _ int64, _ time.Time) ([]int64, error) {
	return f.workingIDs, f.err
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

func catalogWith(serviceIDs ...int64) *fakeCatalogRepo {
	services := make([]domain.Service, len(serviceIDs))
	for i, id := range serviceIDs {
		services[i] = domain.Service{ID: id, CompanyID: 1, Active: true}
	}
	return &fakeCatalogRepo{services: services, exists: true}
}

func newUseCase(repo *fakeProfessionalRepo, catalog *fakeCatalogRepo, schedule *fakeScheduleClient) *UseCase {
	return NewUseCase(repo, catalog, schedule, nopLogger{})
}

func baseRequest(serviceIDs ...int64) *Request {
	return &Request{
		UserID:     100,
		CompanyID:  1,
		ServiceIDs: serviceIDs,
		Date:       time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_SingleServiceTwoMasters(t *testing.T) {
	// Обе мастера умеют услугу - эксклюзивных исполнителей нет, выбор пустой
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	uc := newUseCase(
		&fakeProfessionalRepo{professionals: []*domain.Professional{p1, p2}},
		catalogWith(10),
		&fakeScheduleClient{workingIDs: []int64{1, 2}},
	)

	resp, err := uc.Execute(context.Background(), baseRequest(10))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecommendedCount)
	assert.Equal(t, 1, resp.ProfessionalsRequested)
	assert.Equal(t, 0, resp.Selection.FilledCount())
	assert.False(t, resp.Valid)

	for _, cp := range resp.Professionals {
		assert.Equal(t, domain.StateOptimal, cp.State)
	}
	assert.Equal(t, domain.CoverageUncovered, resp.Coverage[10])
}

func TestExecute_ExclusiveProvidersAutoSelected(t *testing.T) {
	// P1 и P2 - единственные исполнители своих услуг: оба предвыбраны, план сразу валиден
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 20)

	uc := newUseCase(
		&fakeProfessionalRepo{professionals: []*domain.Professional{p1, p2}},
		catalogWith(10, 20),
		&fakeScheduleClient{workingIDs: []int64{1, 2}},
	)

	resp, err := uc.Execute(context.Background(), baseRequest(10, 20))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.RecommendedCount)
	assert.Equal(t, 2, resp.ProfessionalsRequested)
	assert.Equal(t, 2, resp.Selection.FilledCount())
	assert.True(t, resp.Valid)
	assert.Equal(t, domain.CoverageCovered, resp.Coverage[10])
	assert.Equal(t, domain.CoverageCovered, resp.Coverage[20])

	for _, cp := range resp.Professionals {
		assert.Equal(t, domain.StateSelected, cp.State)
	}
}

func TestExecute_RequestedCountOverride(t *testing.T) {
	// Явно запрошенное количество имеет приоритет над рекомендацией движка
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	requested := 3
	req := baseRequest(10)
	req.RequestedCount = &requested

	uc := newUseCase(
		&fakeProfessionalRepo{professionals: []*domain.Professional{p1, p2}},
		catalogWith(10),
		&fakeScheduleClient{workingIDs: []int64{1, 2}},
	)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecommendedCount)
	assert.Equal(t, 3, resp.ProfessionalsRequested)
	require.Len(t, resp.Selection, 3)
}

func TestExecute_ScheduleFiltersPool(t *testing.T) {
	// Мастер 2 не работает в выбранную дату и не попадает в пул
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	uc := newUseCase(
		&fakeProfessionalRepo{professionals: []*domain.Professional{p1, p2}},
		catalogWith(10),
		&fakeScheduleClient{workingIDs: []int64{1}},
	)

	resp, err := uc.Execute(context.Background(), baseRequest(10))

	require.NoError(t, err)
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, int64(1), resp.Professionals[0].Professional.ID)
	assert.False(t, resp.ScheduleDegraded)
}

func TestExecute_ScheduleDegradationUsesFullPool(t *testing.T) {
	// ScheduleService недоступен - работаем со всем пулом и помечаем деградацию
	p1 := newProfessional(1, 10)
	p2 := newProfessional(2, 10)

	uc := newUseCase(
		&fakeProfessionalRepo{professionals: []*domain.Professional{p1, p2}},
		catalogWith(10),
		&fakeScheduleClient{err: scheduleservice.ErrServiceDegraded},
	)

	resp, err := uc.Execute(context.Background(), baseRequest(10))

	require.NoError(t, err)
	assert.Len(t, resp.Professionals, 2)
	assert.True(t, resp.ScheduleDegraded)
}

func TestExecute_UnknownServiceAndCompany(t *testing.T) {
	repo := &fakeProfessionalRepo{professionals: []*domain.Professional{newProfessional(1, 10)}}
	schedule := &fakeScheduleClient{workingIDs: []int64{1}}

	// Услуги нет в каталоге, но компания существует
	uc := newUseCase(repo, catalogWith(10), schedule)
	_, err := uc.Execute(context.Background(), baseRequest(10, 99))
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// У компании вообще нет каталога
	uc = newUseCase(repo, &fakeCatalogRepo{exists: false}, schedule)
	_, err = uc.Execute(context.Background(), baseRequest(10))
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&fakeProfessionalRepo{}, catalogWith(10), &fakeScheduleClient{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"no services", &Request{CompanyID: 1, Date: time.Now()}},
		{"bad company", &Request{CompanyID: 0, ServiceIDs: []int64{10}, Date: time.Now()}},
		{"duplicate services", &Request{CompanyID: 1, ServiceIDs: []int64{10, 10}, Date: time.Now()}},
		{"zero date", &Request{CompanyID: 1, ServiceIDs: []int64{10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
