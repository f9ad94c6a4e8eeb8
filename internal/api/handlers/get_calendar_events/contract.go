package get_calendar_events

import (
	"context"

	eventsUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/get_calendar_events"
)

type EventsUseCase interface {
	Execute(ctx context.Context, req *eventsUC.Request) (*eventsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
