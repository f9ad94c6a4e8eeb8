package toggle_closed_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonScheduleService/internal/integrations/notifier"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

// UseCase use case переключения закрытого дня по клику в календаре
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	cache           SnapshotCache
	notifier        Notifier
	metrics         Metrics
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	cache SnapshotCache,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		notifier:        notifier,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute закрывает дату, если записи на неё нет, иначе снимает отметку
// Решение и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ToggleClosedDay: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("ToggleClosedDay: date=%s", domain.FormatDate(date))

	var (
		resp   *Response
		action scheduling.Action
	)

	// 1. Решение и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entries, err := uc.scheduleRepo.List(txCtx)
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			return fmt.Errorf("%w: failed to list schedule: %v", ErrInternal, err)
		}

		decision := scheduling.Decide(date, entries)
		if err := decision.Validate(entries); err != nil {
			return fmt.Errorf("%w: inconsistent decision: %v", ErrInternal, err)
		}
		action = decision.Action

		switch decision.Action {
		case scheduling.ActionClose:
			resp, err = uc.close(txCtx, date)
		case scheduling.ActionUnmark:
			resp, err = uc.unmark(txCtx, decision)
		}
		return err
	})
	if err != nil {
		// Конкурентная транзакция изменила ту же дату: решение принято по устаревшему снимку
		if txmanager.IsSerializationFailure(err) && !errors.Is(err, scheduling.ErrStaleSnapshot) {
			err = uc.staleError(action)
		}
		if errors.Is(err, scheduling.ErrStaleSnapshot) {
			uc.logger.Warn("ToggleClosedDay: stale snapshot for date=%s: %v", domain.FormatDate(date), err)
			return nil, err
		}
		uc.logger.Error("ToggleClosedDay: transaction failed for date=%s: %v", domain.FormatDate(date), err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 2. После коммита сбрасываем кэш снимка
	uc.cache.Invalidate(ctx)
	uc.metrics.ObserveToggle(string(resp.Action))

	// 3. Закрытый день с активными записями - уведомляем
	if resp.Action == scheduling.ActionClose {
		resp.AffectedAppointments = uc.notifyConflicts(ctx, date, resp.EntryID)
	}

	uc.logger.Info("ToggleClosedDay: date=%s action=%s entry=%s", resp.Date, resp.Action, resp.EntryID)
	return resp, nil
}

// close создаёт запись закрытой даты
func (uc *UseCase) close(ctx context.Context, date time.Time) (*Response, error) {
	entry, err := uc.scheduleRepo.CreateClosedDate(ctx, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrClosedDateExists) || txmanager.IsSerializationFailure(err) {
			return nil, uc.staleError(scheduling.ActionClose)
		}
		return nil, fmt.Errorf("%w: failed to create closed date: %v", ErrInternal, err)
	}

	return &Response{
		Action:  scheduling.ActionClose,
		Date:    domain.FormatDate(date),
		EntryID: entry.ID,
	}, nil
}

// unmark удаляет найденную запись закрытой даты
func (uc *UseCase) unmark(ctx context.Context, decision scheduling.Decision) (*Response, error) {
	id := ptr.Value(decision.TargetID)

	if err := uc.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) || txmanager.IsSerializationFailure(err) {
			return nil, uc.staleError(scheduling.ActionUnmark)
		}
		return nil, fmt.Errorf("%w: failed to delete entry id=%s: %v", ErrInternal, id, err)
	}

	return &Response{
		Action:  scheduling.ActionUnmark,
		Date:    decision.Date,
		EntryID: id,
	}, nil
}

// staleError описывает проигранную гонку за дату
// Снятие отметки, которую уже сняли, - NotFound; всё остальное - Conflict
func (uc *UseCase) staleError(action scheduling.Action) error {
	if action == scheduling.ActionUnmark {
		uc.metrics.ObserveConflict(conflictKindUnmark)
		return errors.Join(ErrNotFound, scheduling.ErrStaleSnapshot)
	}
	uc.metrics.ObserveConflict(conflictKindClose)
	return errors.Join(ErrConflict, scheduling.ErrStaleSnapshot)
}

// notifyConflicts ищет активные записи на закрытую дату и публикует событие
// Ошибки уведомления только логируются: дата уже закрыта
func (uc *UseCase) notifyConflicts(ctx context.Context, date time.Time, entryID uuid.UUID) []uuid.UUID {
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("ToggleClosedDay: failed to load appointments for date=%s: %v", domain.FormatDate(date), err)
		return []uuid.UUID{}
	}

	ids := make([]uuid.UUID, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsActive() {
			ids = append(ids, appointment.ID)
		}
	}
	if len(ids) == 0 {
		return ids
	}

	uc.logger.Warn("ToggleClosedDay: date=%s closed with %d active appointments", domain.FormatDate(date), len(ids))

	event := notifier.ClosedDayConflict{
		EventID:        uuid.New(),
		Date:           domain.FormatDate(date),
		EntryID:        entryID,
		AppointmentIDs: ids,
		OccurredAt:     uc.timeProvider.Now().UTC(),
	}
	if err := uc.notifier.PublishClosedDayConflict(ctx, event); err != nil {
		uc.logger.Error("ToggleClosedDay: failed to publish conflict for date=%s: %v", event.Date, err)
	}

	return ids
}
