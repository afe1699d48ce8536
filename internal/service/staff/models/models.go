package models

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// Request модели

// CreateProfessionalRequest запрос на создание мастера
type CreateProfessionalRequest struct {
	UserID     int64
	CompanyID  int64
	Name       string
	Active     bool
	ServiceIDs []int64
}

// UpdateProfessionalRequest запрос на обновление мастера
// nil-поля не меняются
type UpdateProfessionalRequest struct {
	UserID         int64
	ProfessionalID int64
	Name           *string
	Active         *bool
	ServiceIDs     []int64 // nil = набор услуг не меняется
}

// ListProfessionalsRequest запрос на получение мастеров компании
type ListProfessionalsRequest struct {
	CompanyID  int64
	Date       *time.Time // фильтр по рабочей дате (опционально)
	ServiceIDs []int64    // фильтр по выполняемым услугам (опционально)
}

// Response модели

// ProfessionalResponse мастер в ответе сервиса
type ProfessionalResponse struct {
	ID         int64
	CompanyID  int64
	Name       string
	Active     bool
	ServiceIDs []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfessionalListResponse список мастеров
type ProfessionalListResponse struct {
	Professionals []*ProfessionalResponse
}

// FromDomainProfessional конвертирует доменную модель в ответ сервиса
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Name:       p.Name,
		Active:     p.Active,
		ServiceIDs: p.OfferedServiceIDs.ToSlice(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainProfessionalList конвертирует список доменных моделей в ответ сервиса
func FromDomainProfessionalList(professionals []*domain.Professional) *ProfessionalListResponse {
	result := make([]*ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		result[i] = FromDomainProfessional(p)
	}
	return &ProfessionalListResponse{Professionals: result}
}
