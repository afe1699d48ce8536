package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ScheduleService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWorkingProfessionals получает список ID мастеров, работающих в компании в указанную дату
func (c *Client) GetWorkingProfessionals(ctx context.Context, companyID int64, date time.Time) ([]int64, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/working-professionals?date=%s",
		c.baseURL, companyID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid company ID or date format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCompanyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var schedule WorkingProfessionalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return schedule.ProfessionalIDs, nil
}

// GetWorkingProfessionalsWithGracefulDegradation получает работающих мастеров с graceful degradation
// При недоступности ScheduleService возвращает ErrServiceDegraded, что позволяет
// вызывающей стороне работать со всем пулом мастеров компании
func (c *Client) GetWorkingProfessionalsWithGracefulDegradation(ctx context.Context, companyID int64, date time.Time) ([]int64, error) {
	c.log.Info("Fetching working professionals for company=%d, date=%s", companyID, date.Format(domain.DateFormat))

	ids, err := c.GetWorkingProfessionals(ctx, companyID, date)
	if err != nil {
		// Отсутствие расписания - бизнес-ошибка, пробрасываем её дальше
		if err == ErrCompanyNotFound {
			c.log.Info("No schedule found for company=%d", companyID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ScheduleService unavailable, applying graceful degradation for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: company_id=%d, error=%v", ErrServiceDegraded, companyID, err)
	}

	c.log.Info("Successfully fetched %d working professionals for company=%d", len(ids), companyID)
	return ids, nil
}
