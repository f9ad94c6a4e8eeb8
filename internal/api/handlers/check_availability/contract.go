package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	CheckAvailability(ctx context.Context, date time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
