package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// validateName проверяет имя мастера
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

// checkServicesExist проверяет, что все услуги присутствуют в каталоге компании
func (s *Service) checkServicesExist(ctx context.Context, companyID int64, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	services, err := s.catalogRepo.GetByIDs(ctx, companyID, serviceIDs)
	if err != nil {
		s.logger.Error("checkServicesExist: catalog error for company=%d: %v", companyID, err)
		return fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	found := types.NewInt64Set(domain.ServiceIDs(services)...)
	for _, id := range serviceIDs {
		if !found.Contains(id) {
			s.logger.Warn("checkServicesExist: service id=%d not found in company=%d", id, companyID)
			return ErrServiceNotFound
		}
	}

	return nil
}
