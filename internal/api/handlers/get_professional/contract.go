package get_professional

import (
	"context"

	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
)

type StaffService interface {
	GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
