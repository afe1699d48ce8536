package get_professionals

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
)

// ProfessionalResponse HTTP модель мастера
type ProfessionalResponse struct {
	ID         int64   `json:"id"`
	CompanyID  int64   `json:"companyId"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	ServiceIDs []int64 `json:"serviceIds"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ProfessionalListResponse HTTP модель списка мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfessionalListResponse) *ProfessionalListResponse {
	professionals := make([]ProfessionalResponse, len(resp.Professionals))
	for i, p := range resp.Professionals {
		professionals[i] = ProfessionalResponse{
			ID:         p.ID,
			CompanyID:  p.CompanyID,
			Name:       p.Name,
			Active:     p.Active,
			ServiceIDs: p.ServiceIDs,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &ProfessionalListResponse{Professionals: professionals}
}
