package toggle_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/api/middleware"
	toggleProfessional "github.com/m04kA/SMC-StaffService/internal/usecase/toggle_professional"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgCompanyNotFound       = "компания не найдена"
	msgServiceNotFound       = "услуга не найдена"
	msgProfessionalNotInPool = "мастер не работает в выбранную дату"
	msgSelectionFull         = "все места в выборе уже заняты"
	msgInvalidInput          = "некорректные параметры запроса"
)

type Handler struct {
	useCase ToggleProfessionalUseCase
	logger  Logger
}

func NewHandler(useCase ToggleProfessionalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/assignment/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/toggle - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/assignment/toggle - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ToggleProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, companyID)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/toggle - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, toggleProfessional.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/assignment/toggle - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, toggleProfessional.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/toggle - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, toggleProfessional.ErrServiceNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/toggle - Service not found: company_id=%d, service_ids=%v",
				companyID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, toggleProfessional.ErrProfessionalNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/toggle - Professional not in pool: company_id=%d, professional_id=%d",
				companyID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotInPool)

		case errors.Is(err, toggleProfessional.ErrSelectionFull):
			h.logger.Warn("POST /companies/{id}/assignment/toggle - Selection is full: company_id=%d, professional_id=%d",
				companyID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSelectionFull)

		default:
			h.logger.Error("POST /companies/{id}/assignment/toggle - Failed to toggle professional: company_id=%d, professional_id=%d, error=%v",
				companyID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, req.ServiceIDs)

	h.logger.Info("POST /companies/{id}/assignment/toggle - Toggle processed: company_id=%d, professional_id=%d, accepted=%t, removed=%t",
		companyID, req.ProfessionalID, result.Accepted, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, response)
}
