package interpret_click

import (
	"context"
	"errors"
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
	err     error
}

func (s *stubSchedule) List(context.Context) ([]domain.ScheduleEntry, error) {
	return s.entries, s.err
}

type stubAppointments struct {
	list       []domain.Appointment
	lastFilter domain.AppointmentsFilter
}

func (s *stubAppointments) GetByFilter(_ context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	s.lastFilter = filter
	return s.list, nil
}

type clickMetrics struct {
	outcomes []string
}

func (m *clickMetrics) ObserveClick(view, outcome string) {
	m.outcomes = append(m.outcomes, view+":"+outcome)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newUseCase(entries []domain.ScheduleEntry, appointments []domain.Appointment) (*UseCase, *stubAppointments, *clickMetrics) {
	appts := &stubAppointments{list: appointments}
	metrics := &clickMetrics{}
	uc := NewUseCase(&stubSchedule{entries: entries}, appts, metrics, domain.WeekdayNames, logger.NewNop())
	return uc, appts, metrics
}

func TestDayOffClickIsIgnored(t *testing.T) {
	entries := []domain.ScheduleEntry{{ID: uuid.New(), DayOff: []string{"Sunday", "Monday"}}}
	uc, _, metrics := newUseCase(entries, nil)

	for _, view := range []View{ViewDashboard, ViewSchedule} {
		resp, err := uc.Execute(context.Background(), &Request{
			Date:         mustDate(t, "2025-03-10"),
			VisibleMonth: time.March,
			VisibleYear:  2025,
			View:         view,
		})

		require.NoError(t, err)
		assert.False(t, resp.Actionable)
		assert.Nil(t, resp.Result)
	}
	assert.Equal(t, []string{"dashboard:blocked", "schedule:blocked"}, metrics.outcomes)
}

func TestDashboardKeepsClosedBookedDateInspectable(t *testing.T) {
	closed := domain.NewClosedEntry(uuid.New(), mustDate(t, "2025-03-10"))
	uc, _, _ := newUseCase(
		[]domain.ScheduleEntry{closed},
		[]domain.Appointment{{ID: uuid.New(), AppointmentDate: mustDate(t, "2025-03-10"), Status: domain.AppointmentConfirmed}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         mustDate(t, "2025-03-10"),
		VisibleMonth: time.March,
		VisibleYear:  2025,
		View:         ViewDashboard,
	})

	require.NoError(t, err)
	require.True(t, resp.Actionable)
	assert.True(t, resp.Result.HasAppointments)
	assert.Equal(t, closed.ID, *resp.Result.MatchedEntryID)
	require.NotNil(t, resp.Result.HumanReadableDate)
	assert.Equal(t, "Monday • March 10 - 2025", *resp.Result.HumanReadableDate)
	assert.Nil(t, resp.SuggestedAction)
}

func TestScheduleViewSuggestsToggle(t *testing.T) {
	closed := domain.NewClosedEntry(uuid.New(), mustDate(t, "2025-03-12"))
	uc, _, _ := newUseCase([]domain.ScheduleEntry{closed}, nil)

	tests := []struct {
		date   string
		action scheduling.Action
	}{
		{date: "2025-03-12", action: scheduling.ActionUnmark},
		{date: "2025-03-13", action: scheduling.ActionClose},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				Date:         mustDate(t, tt.date),
				VisibleMonth: time.March,
				VisibleYear:  2025,
				View:         ViewSchedule,
			})

			require.NoError(t, err)
			require.NotNil(t, resp.SuggestedAction)
			assert.Equal(t, tt.action, resp.SuggestedAction.Action)
			assert.Nil(t, resp.Result.HumanReadableDate)
		})
	}
}

func TestOutsideVisibleMonthIsIgnored(t *testing.T) {
	uc, appts, _ := newUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         mustDate(t, "2025-04-01"),
		VisibleMonth: time.March,
		VisibleYear:  2025,
		View:         ViewDashboard,
	})

	require.NoError(t, err)
	assert.False(t, resp.Actionable)
	assert.Equal(t, "2025-03-01", domain.FormatDate(*appts.lastFilter.StartDate))
	assert.Equal(t, "2025-04-01", domain.FormatDate(*appts.lastFilter.EndDate))
}

func TestCustomViewUsesRequestFlags(t *testing.T) {
	closed := domain.NewClosedEntry(uuid.New(), mustDate(t, "2025-03-10"))
	uc, _, _ := newUseCase([]domain.ScheduleEntry{closed}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         mustDate(t, "2025-03-10"),
		VisibleMonth: time.March,
		VisibleYear:  2025,
		View:         ViewCustom,
		Options:      &scheduling.ClickOptions{BlockClosedDates: true},
	})
	require.NoError(t, err)
	assert.False(t, resp.Actionable)

	_, err = uc.Execute(context.Background(), &Request{
		Date:         mustDate(t, "2025-03-10"),
		VisibleMonth: time.March,
		VisibleYear:  2025,
		View:         ViewCustom,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterpretClickErrors(t *testing.T) {
	valid := Request{Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), VisibleMonth: time.March, VisibleYear: 2025}

	t.Run("unknown view", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)
		req := valid
		req.View = "week"
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrUnknownView)
	})

	t.Run("bad month", func(t *testing.T) {
		uc, _, _ := newUseCase(nil, nil)
		req := valid
		req.VisibleMonth = 13
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed day-off row", func(t *testing.T) {
		uc, _, _ := newUseCase([]domain.ScheduleEntry{{ID: uuid.New(), DayOff: []string{"Caturday"}}}, nil)
		_, err := uc.Execute(context.Background(), &valid)
		assert.ErrorIs(t, err, ErrMalformedSchedule)
		assert.ErrorIs(t, err, scheduling.ErrConfiguration)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := NewUseCase(&stubSchedule{err: errors.New("timeout")}, &stubAppointments{}, &clickMetrics{}, domain.WeekdayNames, logger.NewNop())
		_, err := uc.Execute(context.Background(), &valid)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
