package delete_schedule_entry

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleService interface {
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
