package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/psqlbuilder"
)

const tableName = "salon_schedule"

var columns = []string{
	"id",
	"is_closed",
	"date",
	"day_off",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписанием салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все записи расписания: сначала строку выходных, затем закрытые даты по возрастанию
func (r *Repository) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("is_closed ASC", "date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	entries := make([]domain.ScheduleEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError(ErrScanRow, "List - rows iteration", err)
	}

	return entries, nil
}

// GetByID получает запись расписания по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, queryError(ErrScanRow, "GetByID - scan entry", err)
	}

	return entry, nil
}

// CreateClosedDate отмечает дату как закрытую
// Уникальный индекс по date (WHERE is_closed) - единственный арбитр гонки двух одновременных закрытий:
// проигравший запрос получает ErrClosedDateExists
func (r *Repository) CreateClosedDate(ctx context.Context, date time.Time) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("is_closed", "date").
		Values(true, domain.FormatDate(date)).
		Suffix("RETURNING id, is_closed, date, day_off, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosedDate - build insert query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrClosedDateExists, domain.FormatDate(date))
		}
		return nil, queryError(ErrExecQuery, "CreateClosedDate - execute insert", err)
	}

	return entry, nil
}

// Delete удаляет закрытую дату по ID
// Строку выходных удалить нельзя - для неё возвращается ErrEntryNotFound
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "is_closed": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return queryError(ErrExecQuery, "Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// UpsertDayOff заменяет набор выходных дней недели
// Строка выходных - синглтон (частичный уникальный индекс по is_closed WHERE NOT is_closed),
// поэтому повторный вызов обновляет существующую строку, а не вставляет новую
func (r *Repository) UpsertDayOff(ctx context.Context, days []string) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("is_closed", "day_off").
		Values(false, pq.Array(days)).
		Suffix("ON CONFLICT (is_closed) WHERE NOT is_closed DO UPDATE " +
			"SET day_off = EXCLUDED.day_off, updated_at = NOW() " +
			"RETURNING id, is_closed, date, day_off, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDayOff - build upsert query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, queryError(ErrExecQuery, "UpsertDayOff - execute upsert", err)
	}

	return entry, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry сканирует строку salon_schedule в доменную модель
func scanEntry(row rowScanner) (*domain.ScheduleEntry, error) {
	var (
		entry                domain.ScheduleEntry
		date                 sql.NullTime
		dayOff               pq.StringArray
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&entry.ID,
		&entry.IsClosed,
		&date,
		&dayOff,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if date.Valid {
		d := domain.DateOnly(date.Time)
		entry.Date = &d
	}
	if len(dayOff) > 0 {
		entry.DayOff = []string(dayOff)
	}
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}
