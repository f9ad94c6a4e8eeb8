package close_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	CloseDate(ctx context.Context, date time.Time) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
