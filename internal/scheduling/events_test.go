package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

func TestRenderEventsOrder(t *testing.T) {
	closed := closedEntry(t, "2025-03-10")
	entries := []domain.ScheduleEntry{
		dayOffEntry("Monday", "Sunday"),
		closed,
	}
	appointments := []domain.Appointment{
		appointmentOn(t, "2025-03-14", domain.AppointmentPending),
		appointmentOn(t, "2025-03-12", domain.AppointmentConfirmed),
		appointmentOn(t, "2025-03-14", domain.AppointmentConfirmed),
		appointmentOn(t, "2025-03-15", domain.AppointmentCancelled),
	}

	events, err := RenderEvents(entries, domain.WeekdayNames, appointments)
	require.NoError(t, err)

	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EventKind{
		EventClosed,
		EventDayOff, EventDayOff,
		EventAppointment, EventAppointment,
	}, kinds)

	assert.Equal(t, "2025-03-10", events[0].Start)
	assert.Equal(t, ColorClosed, events[0].Color)
	assert.Equal(t, DisplayBackground, events[0].Display)
	assert.Equal(t, closed.ID, *events[0].EntryID)

	assert.Equal(t, []int{0}, events[1].DaysOfWeek)
	assert.Equal(t, []int{1}, events[2].DaysOfWeek)
	assert.Equal(t, ColorDayOff, events[1].Color)

	assert.Equal(t, "2025-03-14", events[3].Start)
	assert.Equal(t, 2, events[3].AppointmentCount)
	assert.Equal(t, "2 appointments", events[3].Title)
	assert.Equal(t, "2025-03-12", events[4].Start)
	assert.Equal(t, "1 appointment", events[4].Title)
}

func TestRenderEventsWithoutAppointments(t *testing.T) {
	events, err := RenderEvents([]domain.ScheduleEntry{dayOffEntry("Friday")}, domain.WeekdayNames, nil)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventDayOff, events[0].Kind)
	assert.Equal(t, "Friday", events[0].Title)
}

func TestRenderEventsPropagatesConfigurationError(t *testing.T) {
	_, err := RenderEvents([]domain.ScheduleEntry{dayOffEntry("Holiday")}, domain.WeekdayNames, nil)

	assert.ErrorIs(t, err, ErrConfiguration)
}
