package get_calendar_events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// UseCase use case построения событий календаря
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	weekdayNames    []string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	weekdayNames []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		weekdayNames:    weekdayNames,
		logger:          logger,
	}
}

// Execute возвращает события календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}
	uc.logger.Info("GetCalendarEvents: from=%v, to=%v, appointments=%v", req.StartDate, req.EndDate, req.IncludeAppointments)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarEvents: validation failed: %v", err)
		return nil, err
	}

	entries, err := uc.scheduleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetCalendarEvents: failed to list schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedule: %v", ErrInternal, err)
	}

	var appointments []domain.Appointment
	if req.IncludeAppointments {
		appointments, err = uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentsFilter{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			uc.logger.Error("GetCalendarEvents: failed to load appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
		}
	}

	events, err := scheduling.RenderEvents(entries, uc.weekdayNames, appointments)
	if err != nil {
		uc.logger.Error("GetCalendarEvents: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	uc.logger.Info("GetCalendarEvents: rendered %d events", len(events))
	return &Response{Events: events}, nil
}
