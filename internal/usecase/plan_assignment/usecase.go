package plan_assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	scheduleClient "github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// UseCase use case инициализации шага выбора мастеров:
// оценка количества, автовыбор эксклюзивных исполнителей и первичная классификация пула
type UseCase struct {
	professionalRepo ProfessionalRepository
	catalogRepo      ServiceCatalogRepository
	scheduleClient   ScheduleServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professionalRepo ProfessionalRepository,
	catalogRepo ServiceCatalogRepository,
	scheduleClient ScheduleServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		catalogRepo:      catalogRepo,
		scheduleClient:   scheduleClient,
		logger:           logger,
	}
}

// Execute выполняет use case построения плана выбора мастеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlanAssignment: user=%d, company=%d, services=%v, date=%s",
		req.UserID, req.CompanyID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlanAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем выбранные услуги из каталога
	services, err := uc.loadServices(ctx, req.CompanyID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 3. Загружаем пул мастеров, работающих в выбранную дату
	professionals, degraded, err := uc.loadWorkingPool(ctx, req.CompanyID, req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Оцениваем оптимальное количество мастеров
	recommended := domain.EstimateOptimalCount(services, professionals)

	// 5. Явно запрошенное количество имеет приоритет над рекомендацией
	estimated := recommended
	if req.RequestedCount != nil {
		estimated = *req.RequestedCount
	}

	// 6. Автовыбор эксклюзивных исполнителей; количество слотов может вырасти,
	// чтобы вместить всех эксклюзивных мастеров
	requested, selection := domain.AutoSelect(services, professionals, estimated)

	// 7. Классифицируем весь пул относительно предзаполненного выбора
	states := domain.ClassifyAll(professionals, services, selection, requested)

	// 8. Вычисляем покрытие услуг и готовность выбора
	coverage := domain.CoverageFor(services, selection, requested)
	valid := domain.IsValidSelection(services, selection, requested)

	uc.logger.Info("PlanAssignment: company=%d, recommended=%d, requested=%d, preselected=%d, valid=%t",
		req.CompanyID, recommended, requested, selection.FilledCount(), valid)

	return &Response{
		CompanyID:              req.CompanyID,
		Date:                   req.Date,
		RecommendedCount:       recommended,
		ProfessionalsRequested: requested,
		Selection:              selection,
		Professionals:          classifiedPool(professionals, states),
		Coverage:               coverage,
		Valid:                  valid,
		ScheduleDegraded:       degraded,
	}, nil
}

// loadServices загружает услуги из каталога и проверяет, что все они существуют
func (uc *UseCase) loadServices(ctx context.Context, companyID int64, serviceIDs []int64) ([]domain.Service, error) {
	services, err := uc.catalogRepo.GetByIDs(ctx, companyID, serviceIDs)
	if err != nil {
		uc.logger.Error("PlanAssignment: failed to load services for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	if len(services) != len(serviceIDs) {
		// Различаем неизвестную компанию и неизвестную услугу
		exists, err := uc.catalogRepo.ExistsByCompany(ctx, companyID)
		if err != nil {
			uc.logger.Error("PlanAssignment: failed to check company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: failed to check company: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("PlanAssignment: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}

		found := types.NewInt64Set(domain.ServiceIDs(services)...)
		for _, id := range serviceIDs {
			if !found.Contains(id) {
				uc.logger.Warn("PlanAssignment: service id=%d not found in company=%d", id, companyID)
			}
		}
		return nil, ErrServiceNotFound
	}

	return services, nil
}

// loadWorkingPool загружает активных мастеров компании и фильтрует их по расписанию
// Возвращает признак graceful degradation: при недоступности ScheduleService пул не фильтруется
func (uc *UseCase) loadWorkingPool(ctx context.Context, companyID int64, date time.Time) ([]*domain.Professional, bool, error) {
	professionals, err := uc.professionalRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		uc.logger.Error("PlanAssignment: failed to load professionals for company=%d: %v", companyID, err)
		return nil, false, fmt.Errorf("%w: failed to load professionals: %v", ErrInternal, err)
	}

	workingIDs, err := uc.scheduleClient.GetWorkingProfessionalsWithGracefulDegradation(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrServiceDegraded) {
			// Расписание недоступно - работаем со всем пулом компании
			uc.logger.Warn("PlanAssignment: schedule unavailable, using full pool for company=%d", companyID)
			return professionals, true, nil
		}
		if errors.Is(err, scheduleClient.ErrCompanyNotFound) {
			// Расписания нет - считаем, что работают все
			uc.logger.Info("PlanAssignment: no schedule for company=%d, using full pool", companyID)
			return professionals, false, nil
		}
		uc.logger.Error("PlanAssignment: schedule client error for company=%d: %v", companyID, err)
		return nil, false, fmt.Errorf("%w: schedule client error: %v", ErrInternal, err)
	}

	working := types.NewInt64Set(workingIDs...)
	filtered := make([]*domain.Professional, 0, len(professionals))
	for _, p := range professionals {
		if working.Contains(p.ID) {
			filtered = append(filtered, p)
		}
	}
	return filtered, false, nil
}

// classifiedPool собирает пул с состояниями в порядке следования мастеров
func classifiedPool(professionals []*domain.Professional, states map[int64]domain.ProfessionalState) []ClassifiedProfessional {
	result := make([]ClassifiedProfessional, len(professionals))
	for i, p := range professionals {
		result[i] = ClassifiedProfessional{Professional: p, State: states[p.ID]}
	}
	return result
}
