package interpret_click

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
}

// Metrics метрики кликов по календарю
type Metrics interface {
	ObserveClick(view, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
