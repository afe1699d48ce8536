package create_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffService/internal/service/staff"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "компания не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные мастера"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/professionals - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/professionals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID, companyID))
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/professionals - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, staff.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/professionals - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, staff.ErrServiceNotFound):
			h.logger.Warn("POST /companies/{id}/professionals - Service not found: company_id=%d, service_ids=%v",
				companyID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /companies/{id}/professionals - Failed to create professional: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("POST /companies/{id}/professionals - Professional created: professional_id=%d, company_id=%d, user_id=%d",
		result.ID, companyID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
