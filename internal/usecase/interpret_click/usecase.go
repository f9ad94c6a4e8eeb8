package interpret_click

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// UseCase use case интерпретации клика по дате календаря
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	weekdayNames    []string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	weekdayNames []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		weekdayNames:    weekdayNames,
		logger:          logger,
	}
}

// Execute решает, что делать с кликом: nil-результат означает, что клик игнорируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InterpretClick: validation failed: %v", err)
		return nil, err
	}

	opts, err := resolveOptions(req)
	if err != nil {
		uc.logger.Warn("InterpretClick: %v", err)
		return nil, err
	}

	clicked := domain.DateOnly(req.Date)
	uc.logger.Info("InterpretClick: date=%s, visible=%d-%02d, view=%s",
		domain.FormatDate(clicked), req.VisibleYear, req.VisibleMonth, req.View)

	// 2. Снимок расписания
	entries, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("InterpretClick: failed to list schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedule: %v", ErrInternal, err)
	}

	rules, err := scheduling.DeriveRules(entries, uc.weekdayNames)
	if err != nil {
		uc.logger.Error("InterpretClick: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	// 3. Активные записи за отображаемый месяц и нажатую дату
	from, to := appointmentRange(clicked, req.VisibleMonth, req.VisibleYear)
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentsFilter{
		StartDate: &from,
		EndDate:   &to,
	})
	if err != nil {
		uc.logger.Error("InterpretClick: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 4. Интерпретация
	result := scheduling.InterpretClick(
		clicked,
		req.VisibleMonth,
		req.VisibleYear,
		rules,
		entries,
		scheduling.ActiveAppointmentDates(appointments),
		opts,
	)

	view := string(req.View)
	if view == "" {
		view = string(ViewSchedule)
	}

	if result == nil {
		uc.metrics.ObserveClick(view, outcomeBlocked)
		uc.logger.Info("InterpretClick: click on %s ignored", domain.FormatDate(clicked))
		return &Response{}, nil
	}
	uc.metrics.ObserveClick(view, outcomeActionable)

	resp := &Response{
		Actionable: true,
		Result:     result,
	}
	if view == string(ViewSchedule) {
		decision := scheduling.Decide(clicked, entries)
		resp.SuggestedAction = &decision
	}

	return resp, nil
}

// appointmentRange возвращает период, покрывающий отображаемый месяц и нажатую дату
func appointmentRange(clicked time.Time, month time.Month, year int) (time.Time, time.Time) {
	from, to := domain.MonthBounds(year, month)
	if clicked.Before(from) {
		from = clicked
	}
	if clicked.After(to) {
		to = clicked
	}
	return from, to
}
