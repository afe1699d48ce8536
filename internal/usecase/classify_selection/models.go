package classify_selection

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// Request модель запроса на переклассификацию текущего выбора
// Выбор передается как слоты с ID мастеров; nil означает пустой слот
type Request struct {
	UserID                 int64
	CompanyID              int64
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

// Response модель ответа с состояниями, покрытием и готовностью выбора
type Response struct {
	CompanyID              int64
	ProfessionalsRequested int
	Selection              domain.Selection
	Professionals          []ClassifiedProfessional
	Coverage               map[int64]domain.CoverageStatus
	Valid                  bool
}
