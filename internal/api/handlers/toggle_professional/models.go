package toggle_professional

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	toggleProfessional "github.com/m04kA/SMC-StaffService/internal/usecase/toggle_professional"
)

// ToggleProfessionalRequest HTTP request model
// Selection передается как слоты с ID мастеров; null - пустой слот
type ToggleProfessionalRequest struct {
	ProfessionalID         int64    `json:"professionalId"`
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

// Alternative мастер, предлагаемый вместо отклоненного guard'ом
type Alternative struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// ToggleProfessionalResponse HTTP response model
// Accepted = false означает, что добавление отклонено; выбор не изменён
type ToggleProfessionalResponse struct {
	CompanyID              int64                    `json:"companyId"`
	ProfessionalsRequested int                      `json:"professionalsRequested"`
	Accepted               bool                     `json:"accepted"`
	Removed                bool                     `json:"removed"`
	Selection              []*int64                 `json:"selection"`
	Alternatives           []Alternative            `json:"alternatives"`
	Professionals          []ClassifiedProfessional `json:"professionals"`
	Coverage               []ServiceCoverage        `json:"coverage"`
	Valid                  bool                     `json:"valid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *ToggleProfessionalRequest) ToUseCaseRequest(userID, companyID int64) (*toggleProfessional.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &toggleProfessional.Request{
		UserID:                 userID,
		CompanyID:              companyID,
		ProfessionalID:         r.ProfessionalID,
		ServiceIDs:             r.ServiceIDs,
		Date:                   date,
		ProfessionalsRequested: r.ProfessionalsRequested,
		SelectionIDs:           r.Selection,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Порядок услуг в coverage повторяет порядок услуг в запросе
func FromUseCaseResponse(resp *toggleProfessional.Response, serviceIDs []int64) *ToggleProfessionalResponse {
	return &ToggleProfessionalResponse{
		CompanyID:              resp.CompanyID,
		ProfessionalsRequested: resp.ProfessionalsRequested,
		Accepted:               resp.Accepted,
		Removed:                resp.Removed,
		Selection:              selectionToIDs(resp.Selection),
		Alternatives:           alternativesToModels(resp.Alternatives),
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

func alternativesToModels(professionals []*domain.Professional) []Alternative {
	result := make([]Alternative, len(professionals))
	for i, p := range professionals {
		result[i] = Alternative{
			ID:         p.ID,
			Name:       p.Name,
			ServiceIDs: p.OfferedServiceIDs.ToSlice(),
		}
	}
	return result
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

func classifiedToModels(professionals []toggleProfessional.ClassifiedProfessional) []ClassifiedProfessional {
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
