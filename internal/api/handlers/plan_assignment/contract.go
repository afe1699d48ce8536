package plan_assignment

import (
	"context"

	planAssignment "github.com/m04kA/SMC-StaffService/internal/usecase/plan_assignment"
)

type PlanAssignmentUseCase interface {
	Execute(ctx context.Context, req *planAssignment.Request) (*planAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
