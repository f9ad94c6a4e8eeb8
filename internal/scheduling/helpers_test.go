package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func closedEntry(t *testing.T, date string) domain.ScheduleEntry {
	t.Helper()
	return domain.NewClosedEntry(uuid.New(), mustDate(t, date))
}

func dayOffEntry(days ...string) domain.ScheduleEntry {
	return domain.ScheduleEntry{ID: uuid.New(), DayOff: days}
}

func appointmentOn(t *testing.T, date string, status domain.AppointmentStatus) domain.Appointment {
	t.Helper()
	return domain.Appointment{ID: uuid.New(), AppointmentDate: mustDate(t, date), Status: status}
}

// eachDay calls fn for every day in [from, to]
func eachDay(t *testing.T, from, to string, fn func(d time.Time)) {
	t.Helper()
	for d := mustDate(t, from); !d.After(mustDate(t, to)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
