package plan_assignment

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	planAssignment "github.com/m04kA/SMC-StaffService/internal/usecase/plan_assignment"
)

// PlanAssignmentRequest HTTP request model
type PlanAssignmentRequest struct {
	ServiceIDs             []int64 `json:"serviceIds"`
	Date                   string  `json:"date"` // "2025-11-03"
	ProfessionalsRequested *int    `json:"professionalsRequested,omitempty"`
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

// PlanAssignmentResponse HTTP response model
type PlanAssignmentResponse struct {
	CompanyID              int64                    `json:"companyId"`
	Date                   string                   `json:"date"`
	RecommendedCount       int                      `json:"recommendedCount"`
	ProfessionalsRequested int                      `json:"professionalsRequested"`
	Selection              []*int64                 `json:"selection"`
	Professionals          []ClassifiedProfessional `json:"professionals"`
	Coverage               []ServiceCoverage        `json:"coverage"`
	Valid                  bool                     `json:"valid"`
	ScheduleDegraded       bool                     `json:"scheduleDegraded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *PlanAssignmentRequest) ToUseCaseRequest(userID, companyID int64) (*planAssignment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &planAssignment.Request{
		UserID:         userID,
		CompanyID:      companyID,
		ServiceIDs:     r.ServiceIDs,
		Date:           date,
		RequestedCount: r.ProfessionalsRequested,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Порядок услуг в coverage повторяет порядок услуг в запросе
func FromUseCaseResponse(resp *planAssignment.Response, serviceIDs []int64) *PlanAssignmentResponse {
	return &PlanAssignmentResponse{
		CompanyID:              resp.CompanyID,
		Date:                   resp.Date.Format(domain.DateFormat),
		RecommendedCount:       resp.RecommendedCount,
		ProfessionalsRequested: resp.ProfessionalsRequested,
		Selection:              SelectionToIDs(resp.Selection),
		Professionals:          classifiedToModels(resp.Professionals),
		Coverage:               CoverageToModels(resp.Coverage, serviceIDs),
		Valid:                  resp.Valid,
		ScheduleDegraded:       resp.ScheduleDegraded,
	}
}

// SelectionToIDs конвертирует доменный выбор в слоты с ID; nil - пустой слот
func SelectionToIDs(selection domain.Selection) []*int64 {
	ids := make([]*int64, len(selection))
	for i, p := range selection {
		if p != nil {
			id := p.ID
			ids[i] = &id
		}
	}
	return ids
}

// CoverageToModels конвертирует мапу покрытия в список в порядке запрошенных услуг
func CoverageToModels(coverage map[int64]domain.CoverageStatus, serviceIDs []int64) []ServiceCoverage {
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

func classifiedToModels(professionals []planAssignment.ClassifiedProfessional) []ClassifiedProfessional {
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
