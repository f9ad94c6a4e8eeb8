package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/dbmetrics"
)

// DefaultKey ключ снимка расписания
const DefaultKey = "salon:schedule:snapshot"

// DefaultGenerationKey ключ счётчика поколений, Invalidate увеличивает его через INCR
const DefaultGenerationKey = "salon:schedule:generation"

const (
	resultHit    = "hit"
	resultMiss   = "miss"
	resultError  = "error"
	resultBypass = "bypass"
	resultStale  = "stale"
)

// CachedRepository кэширует снимок расписания в Redis
// Любая запись увеличивает поколение кэша. Снимок помечается поколением, прочитанным
// до запроса в БД, и при чтении отбрасывается, если поколение с тех пор изменилось:
// читатель, опоздавший с записью снимка после чужого изменения, не отравит кэш.
// Внутри транзакции кэш не читается и не сбрасывается: вызывающий код обязан
// вызвать Invalidate после коммита.
type CachedRepository struct {
	repo          Repository
	client        RedisClient
	key           string
	generationKey string
	ttl           time.Duration
	metrics       Metrics
	logger        Logger
}

// NewCachedRepository создает кэширующую обёртку над репозиторием расписания
func NewCachedRepository(repo Repository, client RedisClient, ttl time.Duration, metrics Metrics, logger Logger) *CachedRepository {
	return &CachedRepository{
		repo:          repo,
		client:        client,
		key:           DefaultKey,
		generationKey: DefaultGenerationKey,
		ttl:           ttl,
		metrics:       metrics,
		logger:        logger,
	}
}

// List возвращает снимок из кэша или из БД
func (c *CachedRepository) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	if dbmetrics.IsInTransaction(ctx) {
		c.metrics.ObserveCache(resultBypass)
		return c.repo.List(ctx)
	}

	entries, generation, err := c.read(ctx)
	if err != nil {
		c.metrics.ObserveCache(resultError)
		c.logger.Warn("ScheduleCache: failed to read %s: %v", c.key, err)
		return c.repo.List(ctx)
	}
	if entries != nil {
		c.metrics.ObserveCache(resultHit)
		return entries, nil
	}

	entries, err = c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.write(ctx, entries, generation)
	return entries, nil
}

func (c *CachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleEntry, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *CachedRepository) CreateClosedDate(ctx context.Context, date time.Time) (*domain.ScheduleEntry, error) {
	entry, err := c.repo.CreateClosedDate(ctx, date)
	if err != nil {
		return nil, err
	}
	c.invalidateOutsideTx(ctx)
	return entry, nil
}

func (c *CachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateOutsideTx(ctx)
	return nil
}

func (c *CachedRepository) UpsertDayOff(ctx context.Context, days []string) (*domain.ScheduleEntry, error) {
	entry, err := c.repo.UpsertDayOff(ctx, days)
	if err != nil {
		return nil, err
	}
	c.invalidateOutsideTx(ctx)
	return entry, nil
}

// Invalidate увеличивает поколение и удаляет снимок; ошибки Redis только логируются
func (c *CachedRepository) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, c.generationKey).Err(); err != nil {
		c.metrics.ObserveCache(resultError)
		c.logger.Warn("ScheduleCache: failed to bump %s: %v", c.generationKey, err)
	}
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.metrics.ObserveCache(resultError)
		c.logger.Warn("ScheduleCache: failed to invalidate %s: %v", c.key, err)
	}
}

func (c *CachedRepository) invalidateOutsideTx(ctx context.Context) {
	if dbmetrics.IsInTransaction(ctx) {
		return
	}
	c.Invalidate(ctx)
}

// read атомарно читает поколение и снимок
// Возвращает nil-записи при промахе; поколение нужно для последующей записи снимка
func (c *CachedRepository) read(ctx context.Context) ([]domain.ScheduleEntry, int64, error) {
	values, err := c.client.MGet(ctx, c.generationKey, c.key).Result()
	if err != nil {
		return nil, 0, err
	}
	if len(values) != 2 {
		return nil, 0, fmt.Errorf("unexpected MGET reply length %d", len(values))
	}

	generation, err := parseGeneration(values[0])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := values[1].(string)
	if !ok {
		c.metrics.ObserveCache(resultMiss)
		return nil, generation, nil
	}

	var s snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Version != snapshotVersion {
		c.metrics.ObserveCache(resultMiss)
		c.logger.Warn("ScheduleCache: dropping unreadable snapshot: %v", err)
		return nil, generation, nil
	}

	if s.Generation != generation {
		c.metrics.ObserveCache(resultStale)
		c.logger.Info("ScheduleCache: dropping snapshot of generation %d, current is %d", s.Generation, generation)
		return nil, generation, nil
	}

	entries, err := s.toDomain()
	if err != nil {
		c.metrics.ObserveCache(resultMiss)
		c.logger.Warn("ScheduleCache: dropping malformed snapshot: %v", err)
		return nil, generation, nil
	}

	return entries, generation, nil
}

func (c *CachedRepository) write(ctx context.Context, entries []domain.ScheduleEntry, generation int64) {
	raw, err := json.Marshal(toSnapshot(entries, generation))
	if err != nil {
		c.logger.Error("ScheduleCache: failed to encode snapshot: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.metrics.ObserveCache(resultError)
		c.logger.Warn("ScheduleCache: failed to write %s: %v", c.key, err)
	}
}

// parseGeneration разбирает значение счётчика; отсутствующий ключ - поколение 0
func parseGeneration(value interface{}) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case string:
		generation, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed generation %q: %w", v, err)
		}
		return generation, nil
	default:
		return 0, fmt.Errorf("unexpected generation type %T", value)
	}
}

// NoopInvalidator используется, когда кэш выключен
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context) {}
