package set_day_off

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetDayOff(ctx context.Context, req *models.SetDayOffRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
