package classify_selection

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	classifySelection "github.com/m04kA/SMC-StaffService/internal/usecase/classify_selection"
)

// ClassifySelectionRequest HTTP request model
// Selection передается как слоты с ID мастеров; null - пустой слот
type ClassifySelectionRequest struct {
	ServiceIDs             []int64  `json:"serviceIds"`
	Date                   string   `json:"date"` // "2025-11-03"
	ProfessionalsRequested int      `json:"professionalsRequested"`
	Selection              []*int64 `json:"selection"`
}

// ClassifiedProfessional мастер пула с его состоянием выбора
type ClassifiedProfessional struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ServiceIDs []int64 `json:"serviceIds"`
	State      string  `json:"state"`
}

// ServiceCoverage статус покрытия одной услуги текущим выбором
type ServiceCoverage struct {
	ServiceID int64  `json:"serviceId"`
	Status    string `json:"status"`
}

// ClassifySelectionResponse HTTP response model
type ClassifySelectionResponse struct {
	CompanyID              int64                    `json:"companyId"`
	ProfessionalsRequested int                      `json:"professionalsRequested"`
	Selection              []*int64                 `json:"selection"`
	Professionals          []ClassifiedProfessional `json:"professionals"`
	Coverage               []ServiceCoverage        `json:"coverage"`
	Valid                  bool                     `json:"valid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *ClassifySelectionRequest) ToUseCaseRequest(userID, companyID int64) (*classifySelection.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &classifySelection.Request{
		UserID:                 userID,
		CompanyID:              companyID,
		ServiceIDs:             r.ServiceIDs,
		Date:                   date,
		ProfessionalsRequested: r.ProfessionalsRequested,
		SelectionIDs:           r.Selection,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Порядок услуг в coverage повторяет порядок услуг в запросе
func FromUseCaseResponse(resp *classifySelection.Response, serviceIDs []int64) *ClassifySelectionResponse {
	return &ClassifySelectionResponse{
		CompanyID:              resp.CompanyID,
		ProfessionalsRequested: resp.ProfessionalsRequested,
		Selection:              selectionToIDs(resp.Selection),
		Professionals:          classifiedToModels(resp.Professionals),
		Coverage:               coverageToModels(resp.Coverage, serviceIDs),
		Valid:                  resp.Valid,
	}
}

func selectionToIDs(selection domain.Selection) []*int64 {
	ids := make([]*int64, len(selection))
	for i, p := range selection {
		if p != nil {
			id := p.ID
			ids[i] = &id
		}
	}
	return ids
}

func coverageToModels(coverage map[int64]domain.CoverageStatus, serviceIDs []int64) []ServiceCoverage {
	result := make([]ServiceCoverage, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		status, ok := coverage[id]
		if !ok {
			continue
		}
		result = append(result, ServiceCoverage{ServiceID: id, Status: string(status)})
	}
	return result
}

func classifiedToModels(professionals []classifySelection.ClassifiedProfessional) []ClassifiedProfessional {
	result := make([]ClassifiedProfessional, len(professionals))
	for i, cp := range professionals {
		result[i] = ClassifiedProfessional{
			ID:         cp.Professional.ID,
			Name:       cp.Professional.Name,
			ServiceIDs: cp.Professional.OfferedServiceIDs.ToSlice(),
			State:      string(cp.State),
		}
	}
	return result
}
