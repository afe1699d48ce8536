package classify_selection

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге компании
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound возвращается, когда выбранный мастер отсутствует в пуле
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
