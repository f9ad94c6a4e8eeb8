package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// Repository репозиторий расписания, который оборачивает кэш
type Repository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleEntry, error)
	CreateClosedDate(ctx context.Context, date time.Time) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertDayOff(ctx context.Context, days []string) (*domain.ScheduleEntry, error)
}

// RedisClient минимальный набор команд Redis (*redis.Client)
// MGET читает поколение и снимок одним запросом
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// Metrics метрики кэша
type Metrics interface {
	ObserveCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
