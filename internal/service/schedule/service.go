package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

// Service сервис для работы с расписанием салона
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	cache        SnapshotCache
	weekdayNames []string
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
// weekdayNames - настроенный список из 7 имён дней недели, начиная с воскресенья
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	cache SnapshotCache,
	weekdayNames []string,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		cache:        cache,
		weekdayNames: weekdayNames,
		logger:       logger,
	}
}

// GetSchedule возвращает текущий снимок расписания
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule")

	entries, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d entries", len(entries))
	return models.FromDomainSchedule(entries), nil
}

// SetDayOff заменяет список выходных дней недели
// Имена проверяются по настроенному списку, дубликаты убираются, порядок - канонический (с воскресенья)
func (s *Service) SetDayOff(ctx context.Context, req *models.SetDayOffRequest) (*models.EntryResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}
	s.logger.Info("SetDayOff: setting day-offs %v", req.Days)

	days, err := s.canonicalDays(req.Days)
	if err != nil {
		s.logger.Warn("SetDayOff: validation failed: %v", err)
		return nil, err
	}

	entry, err := s.scheduleRepo.UpsertDayOff(ctx, days)
	if err != nil {
		s.logger.Error("SetDayOff: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetDayOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDayOff: day-off row id=%s now holds %v", entry.ID, entry.DayOff)
	return models.FromDomainEntry(entry), nil
}

// CloseDate отмечает дату как закрытую
// Повторное закрытие даты возвращает ErrDateAlreadyClosed.
// Проверка и вставка идут в одной транзакции, поэтому проверка читает БД, а не кэш.
func (s *Service) CloseDate(ctx context.Context, date time.Time) (*models.EntryResponse, error) {
	date = domain.DateOnly(date)
	formatted := domain.FormatDate(date)
	s.logger.Info("CloseDate: closing date=%s", formatted)

	var entry *domain.ScheduleEntry

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		entries, err := s.scheduleRepo.List(txCtx)
		if err != nil {
			s.logger.Error("CloseDate: failed to list schedule: %v", err)
			return fmt.Errorf("%w: CloseDate - list schedule: %v", ErrInternal, err)
		}

		if err := scheduling.CheckClose(date, entries); err != nil {
			s.logger.Warn("CloseDate: %v", err)
			return ErrDateAlreadyClosed
		}

		entry, err = s.scheduleRepo.CreateClosedDate(txCtx, date)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrClosedDateExists) || txmanager.IsSerializationFailure(err) {
				// Дату успели закрыть между чтением и вставкой
				s.logger.Warn("CloseDate: date=%s closed concurrently", formatted)
				return errors.Join(ErrDateAlreadyClosed, scheduling.ErrStaleSnapshot)
			}
			s.logger.Error("CloseDate: repository error for date=%s: %v", formatted, err)
			return fmt.Errorf("%w: CloseDate - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDateAlreadyClosed), errors.Is(err, ErrInternal):
			// уже залогированы внутри транзакции
		case txmanager.IsSerializationFailure(err):
			s.logger.Warn("CloseDate: date=%s closed concurrently: %v", formatted, err)
			err = errors.Join(ErrDateAlreadyClosed, scheduling.ErrStaleSnapshot)
		default:
			s.logger.Error("CloseDate: transaction failed for date=%s: %v", formatted, err)
			err = fmt.Errorf("%w: CloseDate - transaction: %v", ErrInternal, err)
		}
		return nil, err
	}

	// Внутри транзакции кэш не сбрасывается
	s.cache.Invalidate(ctx)

	s.logger.Info("CloseDate: date=%s closed, entry id=%s", formatted, entry.ID)
	return models.FromDomainEntry(entry), nil
}

// DeleteEntry удаляет закрытую дату по ID
// Строку выходных удалить нельзя - её можно только перезаписать через SetDayOff
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteEntry: deleting entry id=%s", id)

	if id == uuid.Nil {
		return ErrInvalidInput
	}

	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
			s.logger.Warn("DeleteEntry: entry id=%s not found", id)
			return ErrEntryNotFound
		}
		s.logger.Error("DeleteEntry: failed to get entry id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteEntry - get entry: %v", ErrInternal, err)
	}

	if entry.IsDayOffRow() {
		s.logger.Warn("DeleteEntry: entry id=%s is the day-off row", id)
		return fmt.Errorf("%w: day-off row cannot be deleted", ErrInvalidInput)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
			s.logger.Warn("DeleteEntry: entry id=%s removed concurrently", id)
			return errors.Join(ErrEntryNotFound, scheduling.ErrStaleSnapshot)
		}
		s.logger.Error("DeleteEntry: repository error for entry id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteEntry: entry id=%s deleted", id)
	return nil
}

// CheckAvailability проверяет, можно ли записаться на дату
func (s *Service) CheckAvailability(ctx context.Context, date time.Time) (*models.AvailabilityResponse, error) {
	date = domain.DateOnly(date)
	formatted := domain.FormatDate(date)
	s.logger.Info("CheckAvailability: date=%s", formatted)

	entries, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to list schedule: %v", err)
		return nil, fmt.Errorf("%w: CheckAvailability - list schedule: %v", ErrInternal, err)
	}

	rules, err := scheduling.DeriveRules(entries, s.weekdayNames)
	if err != nil {
		s.logger.Error("CheckAvailability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	return &models.AvailabilityResponse{
		Date:     formatted,
		Bookable: rules.IsBookable(date),
		DayOff:   rules.IsDayOff(date),
		Closed:   rules.IsClosed(date),
	}, nil
}

// canonicalDays проверяет имена и возвращает их без дубликатов в каноническом порядке
func (s *Service) canonicalDays(days []string) ([]string, error) {
	if len(days) > domain.DaysInWeek*2 {
		return nil, fmt.Errorf("%w: too many days: %d", ErrInvalidInput, len(days))
	}

	set := make(scheduling.WeekdaySet, len(days))
	for _, name := range days {
		weekday, err := domain.LookupWeekday(s.weekdayNames, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWeekday, err)
		}
		set[weekday] = struct{}{}
	}

	result := make([]string, 0, len(set))
	for _, weekday := range set.Sorted() {
		result = append(result, domain.WeekdayName(s.weekdayNames, weekday))
	}
	return result, nil
}
