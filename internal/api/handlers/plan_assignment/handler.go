package plan_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/api/middleware"
	planAssignment "github.com/m04kA/SMC-StaffService/internal/usecase/plan_assignment"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "компания не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase PlanAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase PlanAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/assignment/plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/plan - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/assignment/plan - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PlanAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, companyID)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/plan - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, planAssignment.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/assignment/plan - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, planAssignment.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/plan - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, planAssignment.ErrServiceNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/plan - Service not found: company_id=%d, service_ids=%v",
				companyID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /companies/{id}/assignment/plan - Failed to build plan: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, req.ServiceIDs)

	h.logger.Info("POST /companies/{id}/assignment/plan - Plan built successfully: company_id=%d, recommended=%d, valid=%t",
		companyID, result.RecommendedCount, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
