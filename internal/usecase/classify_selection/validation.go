package classify_selection

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

	return validateSelectionIDs(req.SelectionIDs, req.ProfessionalsRequested)
}

// validateSelectionIDs проверяет слоты выбора: длина не больше запрошенной,
// ID положительные и без дублей
func validateSelectionIDs(selectionIDs []*int64, requested int) error {
	if len(selectionIDs) > requested {
		return fmt.Errorf("%w: selection has %d slots but only %d requested",
			ErrInvalidInput, len(selectionIDs), requested)
	}

	seen := make(map[int64]struct{}, len(selectionIDs))
	for _, id := range selectionIDs {
		if id == nil {
			continue
		}
		if *id <= 0 {
			return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[*id]; ok {
			return fmt.Errorf("%w: professional %d appears twice in selection", ErrInvalidInput, *id)
		}
		seen[*id] = struct{}{}
	}

	return nil
}
