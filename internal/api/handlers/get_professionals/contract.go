package get_professionals

import (
	"context"

	"github.com/m04kA/SMC-StaffService/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, req *models.ListProfessionalsRequest) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
