package classify_selection

import (
	"context"

	classifySelection "github.com/m04kA/SMC-StaffService/internal/usecase/classify_selection"
)

type ClassifySelectionUseCase interface {
	Execute(ctx context.Context, req *classifySelection.Request) (*classifySelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
