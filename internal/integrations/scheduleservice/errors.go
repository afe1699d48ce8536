package scheduleservice

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда расписание компании не найдено
	ErrCompanyNotFound = errors.New("company schedule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ScheduleService недоступен и следует работать со всем пулом мастеров
	ErrServiceDegraded = errors.New("scheduleservice unavailable: graceful degradation applied")
)
