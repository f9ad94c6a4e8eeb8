package toggle_closed_day

import (
	"context"

	toggleUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/toggle_closed_day"
)

type ToggleUseCase interface {
	Execute(ctx context.Context, req *toggleUC.Request) (*toggleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
