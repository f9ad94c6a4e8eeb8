package get_calendar_events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

type stubSchedule struct {
	entries []domain.ScheduleEntry
}

func (s *stubSchedule) List(context.Context) ([]domain.ScheduleEntry, error) {
	return s.entries, nil
}

type stubAppointments struct {
	list  []domain.Appointment
	calls int
}

func (s *stubAppointments) GetByFilter(context.Context, domain.AppointmentsFilter) ([]domain.Appointment, error) {
	s.calls++
	return s.list, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventsOrderedClosedDayOffAppointments(t *testing.T) {
	schedule := &stubSchedule{entries: []domain.ScheduleEntry{
		{ID: uuid.New(), DayOff: []string{"Sunday"}},
		domain.NewClosedEntry(uuid.New(), day(2025, 3, 12)),
	}}
	appts := &stubAppointments{list: []domain.Appointment{
		{ID: uuid.New(), AppointmentDate: day(2025, 3, 11), Status: domain.AppointmentPending},
		{ID: uuid.New(), AppointmentDate: day(2025, 3, 11), Status: domain.AppointmentConfirmed},
	}}
	uc := NewUseCase(schedule, appts, domain.WeekdayNames, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{IncludeAppointments: true})

	require.NoError(t, err)
	require.Len(t, resp.Events, 3)
	assert.Equal(t, scheduling.EventClosed, resp.Events[0].Kind)
	assert.Equal(t, scheduling.EventDayOff, resp.Events[1].Kind)
	assert.Equal(t, []int{0}, resp.Events[1].DaysOfWeek)
	assert.Equal(t, scheduling.EventAppointment, resp.Events[2].Kind)
	assert.Equal(t, 2, resp.Events[2].AppointmentCount)
}

func TestEventsWithoutAppointmentsSkipsLookup(t *testing.T) {
	appts := &stubAppointments{}
	uc := NewUseCase(&stubSchedule{}, appts, domain.WeekdayNames, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Empty(t, resp.Events)
	assert.Zero(t, appts.calls)
}

func TestEventsErrors(t *testing.T) {
	from, to := day(2025, 3, 20), day(2025, 3, 1)
	uc := NewUseCase(&stubSchedule{}, &stubAppointments{}, domain.WeekdayNames, logger.NewNop())
	_, err := uc.Execute(context.Background(), &Request{StartDate: &from, EndDate: &to})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	malformed := &stubSchedule{entries: []domain.ScheduleEntry{{ID: uuid.New(), DayOff: []string{"Someday"}}}}
	uc = NewUseCase(malformed, &stubAppointments{}, domain.WeekdayNames, logger.NewNop())
	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, scheduling.ErrConfiguration)
}
