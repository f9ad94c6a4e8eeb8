package interpret_click

import (
	"context"

	clickUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/interpret_click"
)

type ClickUseCase interface {
	Execute(ctx context.Context, req *clickUC.Request) (*clickUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
