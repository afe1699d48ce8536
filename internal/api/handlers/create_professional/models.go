package create_professional

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
)

// CreateProfessionalRequest HTTP request model
type CreateProfessionalRequest struct {
	Name       string  `json:"name"`
	Active     *bool   `json:"active,omitempty"` // по умолчанию true
	ServiceIDs []int64 `json:"serviceIds"`
}

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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateProfessionalRequest) ToServiceRequest(userID, companyID int64) *models.CreateProfessionalRequest {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &models.CreateProfessionalRequest{
		UserID:     userID,
		CompanyID:  companyID,
		Name:       r.Name,
		Active:     active,
		ServiceIDs: r.ServiceIDs,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(p *models.ProfessionalResponse) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Name:       p.Name,
		Active:     p.Active,
		ServiceIDs: p.ServiceIDs,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
