package classify_selection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/api/middleware"
	classifySelection "github.com/m04kA/SMC-StaffService/internal/usecase/classify_selection"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgCompanyNotFound       = "компания не найдена"
	msgServiceNotFound       = "услуга не найдена"
	msgProfessionalNotInPool = "выбранный мастер не работает в выбранную дату"
	msgInvalidInput          = "некорректные параметры запроса"
)

type Handler struct {
	useCase ClassifySelectionUseCase
	logger  Logger
}

func NewHandler(useCase ClassifySelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/assignment/classify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/classify - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/assignment/classify - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ClassifySelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/classify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, companyID)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/assignment/classify - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, classifySelection.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/assignment/classify - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, classifySelection.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/classify - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, classifySelection.ErrServiceNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/classify - Service not found: company_id=%d, service_ids=%v",
				companyID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, classifySelection.ErrProfessionalNotFound):
			h.logger.Warn("POST /companies/{id}/assignment/classify - Professional not in pool: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondNotFound(w, msgProfessionalNotInPool)

		default:
			h.logger.Error("POST /companies/{id}/assignment/classify - Failed to classify selection: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, req.ServiceIDs)

	h.logger.Info("POST /companies/{id}/assignment/classify - Selection classified: company_id=%d, filled=%d/%d, valid=%t",
		companyID, result.Selection.FilledCount(), result.ProfessionalsRequested, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
