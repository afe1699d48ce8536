package toggle_professional

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	ListByCompany(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.Professional, error)
}

// ServiceCatalogRepository интерфейс read-модели каталога услуг
type ServiceCatalogRepository interface {
	GetByIDs(ctx context.Context, companyID int64, serviceIDs []int64) ([]domain.Service, error)
	ExistsByCompany(ctx context.Context, companyID int64) (bool, error)
}

// ScheduleServiceClient интерфейс клиента ScheduleService
type ScheduleServiceClient interface {
	GetWorkingProfessionalsWithGracefulDegradation(ctx context.Context, companyID int64, date time.Time) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
