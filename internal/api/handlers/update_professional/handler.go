package update_professional

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
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgNotFound              = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgInvalidInput          = "некорректные данные мастера"
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

// Handle PUT /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис
	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, professionalID))
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id} - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, staff.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id} - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrServiceNotFound):
			h.logger.Warn("PUT /professionals/{id} - Service not found: professional_id=%d, service_ids=%v",
				professionalID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /professionals/{id} - Failed to update professional: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("PUT /professionals/{id} - Professional updated: professional_id=%d, user_id=%d",
		professionalID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
