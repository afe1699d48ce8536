package toggle_professional

import (
	"context"

	toggleProfessional "github.com/m04kA/SMC-StaffService/internal/usecase/toggle_professional"
)

type ToggleProfessionalUseCase interface {
	Execute(ctx context.Context, req *toggleProfessional.Request) (*toggleProfessional.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
