package toggle_professional

import (
	"fmt"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxSelectedServices {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxSelectedServices)
	}

	seenServices := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seenServices[id]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seenServices[id] = struct{}{}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ProfessionalsRequested < domain.MinProfessionalsRequested ||
		req.ProfessionalsRequested > domain.MaxProfessionalsRequested {
		return fmt.Errorf("%w: professionalsRequested must be between %d and %d",
			ErrInvalidInput, domain.MinProfessionalsRequested, domain.MaxProfessionalsRequested)
	}

	if len(req.SelectionIDs) > req.ProfessionalsRequested {
		return fmt.Errorf("%w: selection has %d slots but only %d requested",
			ErrInvalidInput, len(req.SelectionIDs), req.ProfessionalsRequested)
	}

	seen := make(map[int64]struct{}, len(req.SelectionIDs))
	for _, id := range req.SelectionIDs {
		if id == nil {
			continue
		}
		if *id <= 0 {
			return fmt.Errorf("%w: professionalID in selection must be positive", ErrInvalidInput)
		}
		if _, ok := seen[*id]; ok {
			return fmt.Errorf("%w: professional %d appears twice in selection", ErrInvalidInput, *id)
		}
		seen[*id] = struct{}{}
	}

	return nil
}
