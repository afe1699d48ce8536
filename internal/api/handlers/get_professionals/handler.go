package get_professionals

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/internal/service/staff"
	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServiceID = "некорректный ID услуги"
	msgCompanyNotFound  = "компания не найдена"
	msgServiceNotFound  = "услуга не найдена"
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

// Handle GET /api/v1/companies/{companyId}/professionals
// Query params: date (опционально, YYYY-MM-DD), serviceIds (опционально, через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/professionals - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	req := &models.ListProfessionalsRequest{CompanyID: companyID}

	// Извлекаем date из query параметров
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/professionals - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	// Извлекаем serviceIds из query параметров
	if serviceIDsStr := r.URL.Query().Get("serviceIds"); serviceIDsStr != "" {
		serviceIDs, err := parseServiceIDs(serviceIDsStr)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/professionals - Invalid service IDs: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceIDs = serviceIDs
	}

	// Вызываем сервис
	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/professionals - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, staff.ErrServiceNotFound):
			h.logger.Warn("GET /companies/{id}/professionals - Service not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /companies/{id}/professionals - Failed to list professionals: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("GET /companies/{id}/professionals - Professionals listed: company_id=%d, count=%d",
		companyID, len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// parseServiceIDs парсит список ID услуг из строки вида "1,2,3"
func parseServiceIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
