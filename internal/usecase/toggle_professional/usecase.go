package toggle_professional

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	scheduleClient "github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// UseCase use case переключения мастера в выборе
// Добавление проходит через guard избыточности: мастер, не улучшающий покрытие,
// отклоняется с предложением альтернатив; удаление выполняется безусловно
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

// Execute выполняет use case переключения мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleProfessional: user=%d, company=%d, professional=%d, requested=%d",
		req.UserID, req.CompanyID, req.ProfessionalID, req.ProfessionalsRequested)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ToggleProfessional: validation failed: %v", err)
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

	// 4. Восстанавливаем выбор и находим кандидата в пуле
	selection, err := resolveSelection(req.SelectionIDs, req.ProfessionalsRequested, professionals)
	if err != nil {
		uc.logger.Warn("ToggleProfessional: failed to resolve selection for company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	candidate := findProfessional(professionals, req.ProfessionalID)
	if candidate == nil {
		uc.logger.Warn("ToggleProfessional: professional id=%d is not in the working pool of company=%d",
			req.ProfessionalID, req.CompanyID)
		return nil, ErrProfessionalNotFound
	}

	// 5. Переключаем: выбранный мастер удаляется без участия guard,
	// добавление проходит классификацию
	accepted := true
	removed := false
	alternatives := make([]*domain.Professional, 0)

	if selection.Contains(candidate.ID) {
		selection = selection.Remove(candidate.ID, req.ProfessionalsRequested)
		removed = true
		uc.logger.Info("ToggleProfessional: professional id=%d removed from selection", candidate.ID)
	} else {
		state := domain.Classify(candidate, services, selection, req.ProfessionalsRequested)

		switch state {
		case domain.StateRedundant:
			// Guard: добавление не улучшит покрытие - отклоняем и предлагаем альтернативы
			accepted = false
			alternatives = domain.Alternatives(candidate, professionals, services, selection)
			uc.logger.Info("ToggleProfessional: professional id=%d rejected as redundant, %d alternatives",
				candidate.ID, len(alternatives))

		case domain.StateDisabled:
			// Мастер не выполняет ни одну из выбранных услуг - добавлять его бессмысленно
			accepted = false
			uc.logger.Info("ToggleProfessional: professional id=%d rejected as disabled", candidate.ID)

		default:
			placed, ok := selection.Place(candidate, req.ProfessionalsRequested)
			if !ok {
				uc.logger.Warn("ToggleProfessional: no free slot for professional id=%d", candidate.ID)
				return nil, ErrSelectionFull
			}
			selection = placed
			uc.logger.Info("ToggleProfessional: professional id=%d placed into selection", candidate.ID)
		}
	}

	// 6. Переклассифицируем пул относительно итогового выбора
	states := domain.ClassifyAll(professionals, services, selection, req.ProfessionalsRequested)
	coverage := domain.CoverageFor(services, selection, req.ProfessionalsRequested)
	valid := domain.IsValidSelection(services, selection, req.ProfessionalsRequested)

	uc.logger.Info("ToggleProfessional: company=%d, accepted=%t, removed=%t, filled=%d/%d, valid=%t",
		req.CompanyID, accepted, removed, selection.FilledCount(), req.ProfessionalsRequested, valid)

	return &Response{
		CompanyID:              req.CompanyID,
		ProfessionalsRequested: req.ProfessionalsRequested,
		Accepted:               accepted,
		Removed:                removed,
		Selection:              selection,
		Alternatives:           alternatives,
		Professionals:          classifiedPool(professionals, states),
		Coverage:               coverage,
		Valid:                  valid,
	}, nil
}

// loadServices загружает услуги из каталога и проверяет, что все они существуют
func (uc *UseCase) loadServices(ctx context.Context, companyID int64, serviceIDs []int64) ([]domain.Service, error) {
	services, err := uc.catalogRepo.GetByIDs(ctx, companyID, serviceIDs)
	if err != nil {
		uc.logger.Error("ToggleProfessional: failed to load services for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	if len(services) != len(serviceIDs) {
		exists, err := uc.catalogRepo.ExistsByCompany(ctx, companyID)
		if err != nil {
			uc.logger.Error("ToggleProfessional: failed to check company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: failed to check company: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("ToggleProfessional: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Warn("ToggleProfessional: some services not found in company=%d", companyID)
		return nil, ErrServiceNotFound
	}

	return services, nil
}

// loadWorkingPool загружает активных мастеров и фильтрует их по расписанию
// с graceful degradation при недоступности ScheduleService
func (uc *UseCase) loadWorkingPool(ctx context.Context, companyID int64, date time.Time) ([]*domain.Professional, error) {
	professionals, err := uc.professionalRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		uc.logger.Error("ToggleProfessional: failed to load professionals for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: failed to load professionals: %v", ErrInternal, err)
	}

	workingIDs, err := uc.scheduleClient.GetWorkingProfessionalsWithGracefulDegradation(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrServiceDegraded) || errors.Is(err, scheduleClient.ErrCompanyNotFound) {
			return professionals, nil
		}
		uc.logger.Error("ToggleProfessional: schedule client error for company=%d: %v", companyID, err)
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

// findProfessional ищет мастера в пуле по ID
func findProfessional(professionals []*domain.Professional, id int64) *domain.Professional {
	for _, p := range professionals {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// classifiedPool собирает пул с состояниями в порядке следования мастеров
func classifiedPool(professionals []*domain.Professional, states map[int64]domain.ProfessionalState) []ClassifiedProfessional {
	result := make([]ClassifiedProfessional, len(professionals))
	for i, p := range professionals {
		result[i] = ClassifiedProfessional{Professional: p, State: states[p.ID]}
	}
	return result
}
