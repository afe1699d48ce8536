package toggle_professional

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// Request модель запроса на добавление/удаление мастера из выбора
type Request struct {
	UserID                 int64
	CompanyID              int64
	ProfessionalID         int64
	ServiceIDs             []int64
	Date                   time.Time
	ProfessionalsRequested int
	SelectionIDs           []*int64
}

// ClassifiedProfessional мастер из пула вместе с его состоянием выбора
type ClassifiedProfessional struct {
	Professional *domain.Professional
	State        domain.ProfessionalState
}

// Response модель ответа на переключение мастера
// Accepted = false означает, что guard отклонил добавление; выбор при этом не изменён
type Response struct {
	CompanyID              int64
	ProfessionalsRequested int
	Accepted               bool
	Removed                bool
	Selection              domain.Selection
	Alternatives           []*domain.Professional
	Professionals          []ClassifiedProfessional
	Coverage               map[int64]domain.CoverageStatus
	Valid                  bool
}
