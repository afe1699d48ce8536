package plan_assignment

import (
	"fmt"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxSelectedServices {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxSelectedServices)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.RequestedCount != nil {
		if *req.RequestedCount < domain.MinProfessionalsRequested || *req.RequestedCount > domain.MaxProfessionalsRequested {
			return fmt.Errorf("%w: requested count must be between %d and %d",
				ErrInvalidInput, domain.MinProfessionalsRequested, domain.MaxProfessionalsRequested)
		}
	}

	return nil
}
