package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-StaffService/internal/infra/storage/professional"
	scheduleClient "github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// Service сервис для работы с каталогом мастеров
type Service struct {
	professionalRepo ProfessionalRepository
	catalogRepo      ServiceCatalogRepository
	scheduleClient   ScheduleServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	professionalRepo ProfessionalRepository,
	catalogRepo ServiceCatalogRepository,
	scheduleClient ScheduleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		catalogRepo:      catalogRepo,
		scheduleClient:   scheduleClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Create создает мастера с набором услуг
// Мастер и его связи с услугами создаются в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional for company=%d by user=%d, services=%v",
		req.CompanyID, req.UserID, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateName(req.Name); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что все услуги существуют в каталоге компании
	if err := s.checkServicesExist(ctx, req.CompanyID, req.ServiceIDs); err != nil {
		return nil, err
	}

	professional := &domain.Professional{
		CompanyID:         req.CompanyID,
		Name:              req.Name,
		Active:            req.Active,
		OfferedServiceIDs: types.NewInt64Set(req.ServiceIDs...),
	}

	// 3. Создаем мастера и связи с услугами в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.professionalRepo.Create(txCtx, professional)
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		professional = created
		return nil
	})
	if err != nil {
		s.logger.Error("Create: failed to create professional for company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	s.logger.Info("Create: professional id=%d created for company=%d", professional.ID, req.CompanyID)
	return models.FromDomainProfessional(professional), nil
}

// Update обновляет мастера; непереданные поля не меняются
// Обновление строки и замена набора услуг выполняются в одной транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d by user=%d", req.ProfessionalID, req.UserID)

	// 1. Получаем текущее состояние мастера
	professional, err := s.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Update: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Update: repository error for professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем изменения
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, err
		}
		professional.Name = *req.Name
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}
	if req.ServiceIDs != nil {
		if err := s.checkServicesExist(ctx, professional.CompanyID, req.ServiceIDs); err != nil {
			return nil, err
		}
		professional.OfferedServiceIDs = types.NewInt64Set(req.ServiceIDs...)
	}

	// 3. Сохраняем в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		updated, err := s.professionalRepo.Update(txCtx, professional)
		if err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				return ErrProfessionalNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		professional = updated
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed to update professional id=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	s.logger.Info("Update: professional id=%d updated", professional.ID)
	return models.FromDomainProfessional(professional), nil
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%d", id)

	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetByID: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(professional), nil
}

// List получает мастеров компании с опциональными фильтрами
// по рабочей дате (через ScheduleService) и по выполняемым услугам
func (s *Service) List(ctx context.Context, req *models.ListProfessionalsRequest) (*models.ProfessionalListResponse, error) {
	s.logger.Info("List: fetching professionals for company=%d", req.CompanyID)

	professionals, err := s.professionalRepo.ListByCompany(ctx, req.CompanyID, true)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Фильтр по рабочей дате; при недоступности ScheduleService работаем со всем пулом
	if req.Date != nil {
		professionals, err = s.filterByWorkingDate(ctx, req.CompanyID, *req.Date, professionals)
		if err != nil {
			return nil, err
		}
	}

	// Фильтр по выполняемым услугам
	if len(req.ServiceIDs) > 0 {
		filtered := make([]*domain.Professional, 0, len(professionals))
		for _, p := range professionals {
			if p.OffersAny(req.ServiceIDs) {
				filtered = append(filtered, p)
			}
		}
		professionals = filtered
	}

	s.logger.Info("List: fetched %d professionals for company=%d", len(professionals), req.CompanyID)
	return models.FromDomainProfessionalList(professionals), nil
}

// filterByWorkingDate оставляет только мастеров, работающих в указанную дату
// При недоступности ScheduleService (graceful degradation) возвращает весь пул
func (s *Service) filterByWorkingDate(ctx context.Context, companyID int64, date time.Time, professionals []*domain.Professional) ([]*domain.Professional, error) {
	workingIDs, err := s.scheduleClient.GetWorkingProfessionalsWithGracefulDegradation(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, scheduleClient.ErrServiceDegraded) {
			s.logger.Warn("List: schedule unavailable, using full pool for company=%d", companyID)
			return professionals, nil
		}
		if errors.Is(err, scheduleClient.ErrCompanyNotFound) {
			s.logger.Warn("List: no schedule for company=%d", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("List: schedule client error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: List - schedule client error: %v", ErrInternal, err)
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
