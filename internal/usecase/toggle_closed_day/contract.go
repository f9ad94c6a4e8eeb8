package toggle_closed_day

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/integrations/notifier"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
	CreateClosedDate(ctx context.Context, date time.Time) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
}

// SnapshotCache сбрасывает кэш снимка расписания после коммита
type SnapshotCache interface {
	Invalidate(ctx context.Context)
}

// Notifier отправляет событие о закрытии дня, на который есть записи
type Notifier interface {
	PublishClosedDayConflict(ctx context.Context, event notifier.ClosedDayConflict) error
}

// Metrics метрики переключения закрытых дней
type Metrics interface {
	ObserveToggle(action string)
	ObserveConflict(kind string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
