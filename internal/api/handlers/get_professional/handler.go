package get_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/service/staff"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgNotFound              = "мастер не найден"
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

// Handle GET /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Вызываем сервис
	result, err := h.service.GetByID(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id} - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /professionals/{id} - Failed to get professional: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("GET /professionals/{id} - Professional retrieved: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
