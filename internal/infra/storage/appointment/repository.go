package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// selectAppointments базовый запрос с денормализацией названия процедуры
func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"a.id",
		"a.customer_name",
		"a.contact_info",
		"a.treatment_id",
		"COALESCE(t.name, '')",
		"a.appointment_date",
		"a.status",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		LeftJoin("treatments t ON t.id = a.treatment_id")
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, queryError(ErrScanRow, "GetByID - scan appointment", err)
	}

	return appointment, nil
}

// GetByFilter получает записи с фильтрацией по периоду и статусу
// По умолчанию отменённые записи не возвращаются (IncludeCancelled = false)
//
// Примеры использования:
//
// 1. Активные записи на конкретную дату:
//    date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
//    filter := domain.AppointmentsFilter{StartDate: &date, EndDate: &date}
//
// 2. Только ожидающие подтверждения:
//    status := domain.AppointmentPending
//    filter := domain.AppointmentsFilter{Status: &status}
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().
		OrderBy("a.appointment_date ASC", "a.created_at ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.appointment_date": domain.FormatDate(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"a.appointment_date": domain.FormatDate(*filter.EndDate)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": domain.AppointmentCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError(ErrExecQuery, "GetByFilter - execute query", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows iteration: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return queryError(ErrExecQuery, "UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		treatmentID          uuid.NullUUID
		status               string
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&appointment.ID,
		&appointment.CustomerName,
		&appointment.ContactInfo,
		&treatmentID,
		&appointment.Treatment,
		&appointment.AppointmentDate,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if treatmentID.Valid {
		id := treatmentID.UUID
		appointment.TreatmentID = &id
	}
	appointment.AppointmentDate = domain.DateOnly(appointment.AppointmentDate)
	appointment.Status = domain.AppointmentStatus(status)
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}
