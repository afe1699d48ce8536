package classify_selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	scheduleClient "github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// UseCase use case переклассификации пула мастеров после изменения выбора
// Состояния не хранятся между запросами: каждый вызов пересчитывает всё с нуля
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

// Execute выполняет use case переклассификации выбора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClassifySelection: user=%d, company=%d, services=%v, requested=%d",
		req.UserID, req.CompanyID, req.ServiceIDs, req.ProfessionalsRequested)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ClassifySelection: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем выбранные услуги из каталога
	services, err := uc.loadServices(ctx, req.CompanyID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 3. Загружаем пул мастеров, работающих в выбранную дату
	professionals, err := uc.loadWorkingPool(ctx, req.CompanyID, req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Восстанавливаем выбор из переданных слотов
	selection, err := resolveSelection(req.SelectionIDs, req.ProfessionalsRequested, professionals)
	if err != nil {
		uc.logger.Warn("ClassifySelection: failed to resolve selection for company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	// 5. Классифицируем пул, вычисляем покрытие и готовность выбора
	states := domain.ClassifyAll(professionals, services, selection, req.ProfessionalsRequested)
	coverage := domain.CoverageFor(services, selection, req.ProfessionalsRequested)
	valid := domain.IsValidSelection(services, selection, req.ProfessionalsRequested)

	uc.logger.Info("ClassifySelection: company=%d, filled=%d/%d, valid=%t",
		req.CompanyID, selection.FilledCount(), req.ProfessionalsRequested, valid)

	return &Response{
		CompanyID:              req.CompanyID,
		ProfessionalsRequested: req.ProfessionalsRequested,
		Selection:              selection,
		Professionals:          classifiedPool(professionals, states),
		Coverage:               coverage,
		Valid:                  valid,
	}, nil
}

// loadServices загружает услуги из каталога и проверяет, что все они существуют
func (uc *UseCase) loadServices(ctx context.Context, companyID int64, serviceIDs []int64) ([]domain.Service, error) {
	services, err := uc.catalogRepo.GetByIDs(ctx, companyID, serviceIDs)
	if err != nil {
		uc.logger.Error("ClassifySelection: failed to load services for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	if len(services) != len(serviceIDs) {
		exists, err := uc.catalogRepo.ExistsByCompany(ctx, companyID)
		if err != nil {
			uc.logger.Error("ClassifySelection: failed to check company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: failed to check company: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("ClassifySelection: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Warn("ClassifySelection: some services not found in company=%d", companyID)
		return nil, ErrServiceNotFound
	}

	return services, nil
}

// loadWorkingPool загружает активных мастеров и фильтрует их по расписанию
// с graceful degradation при недоступности ScheduleService
func (uc *UseCase) loadWorkingPool(ctx context.Context, companyID int64, date time.Time) ([]*domain.Professional, error) {
	professionals, err := uc.professionalRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		uc.logger.Error("ClassifySelection: failed to load professionals for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load professionals: %v", ErrInternal, err)
	}

	workingIDs, err := uc.scheduleClient.GetWorkingProfessionalsWithGracefulDegradation(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrServiceDegraded) || errors.Is(err, scheduleClient.ErrCompanyNotFound) {
			return professionals, nil
		}
		uc.logger.Error("ClassifySelection: schedule client error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: schedule client error: %v", ErrInternal, err)
	}

	working := types.NewInt64Set(workingIDs...)
	filtered := make([]*domain.Professional, 0, len(professionals))
	for _, p := range professionals {
		if working.Contains(p.ID) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// resolveSelection восстанавливает доменный выбор из слотов с ID мастеров
// Неизвестный мастер (не из пула) - ошибка; выбор дополняется пустыми слотами до запрошенной длины
func resolveSelection(selectionIDs []*int64, requested int, professionals []*domain.Professional) (domain.Selection, error) {
	byID := make(map[int64]*domain.Professional, len(professionals))
	for _, p := range professionals {
		byID[p.ID] = p
	}

	selection := domain.NewSelection(requested)
	for i, id := range selectionIDs {
		if id == nil {
			continue
		}
		p, ok := byID[*id]
		if !ok {
			return nil, fmt.Errorf("%w: professional %d is not in the working pool", ErrProfessionalNotFound, *id)
		}
		selection[i] = p
	}

	return selection, nil
}

// classifiedPool собирает пул с состояниями в порядке следования мастеров
func classifiedPool(professionals []*domain.Professional, states map[int64]domain.ProfessionalState) []ClassifiedProfessional {
	result := make([]ClassifiedProfessional, len(professionals))
	for i, p := range professionals {
		result[i] = ClassifiedProfessional{Professional: p, State: states[p.ID]}
	}
	return result
}
