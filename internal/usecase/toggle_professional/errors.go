package toggle_professional

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге компании
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound возвращается, когда мастер отсутствует в рабочем пуле
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrSelectionFull возвращается при попытке добавить мастера в полностью заполненный выбор
	ErrSelectionFull = errors.New("selection is already full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
