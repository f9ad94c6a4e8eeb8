package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleEntry, error)
	CreateClosedDate(ctx context.Context, date time.Time) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertDayOff(ctx context.Context, days []string) (*domain.ScheduleEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnapshotCache сбрасывает кэш снимка расписания после коммита
type SnapshotCache interface {
	Invalidate(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
