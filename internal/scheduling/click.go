package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/ptr"
)

// ClickOptions selects which guards are active for one call site
type ClickOptions struct {
	BlockDayOffs      bool
	BlockClosedDates  bool
	BlockOutsideMonth bool
	ReturnCustomDate  bool
}

var (
	// DashboardClickOptions keeps closed but booked dates inspectable
	DashboardClickOptions = ClickOptions{
		BlockDayOffs:      true,
		BlockOutsideMonth: true,
		ReturnCustomDate:  true,
	}

	// ScheduleClickOptions is used by the closed-day editor
	ScheduleClickOptions = ClickOptions{
		BlockDayOffs:      true,
		BlockOutsideMonth: true,
	}
)

// ClickResult describes an actionable click
type ClickResult struct {
	FormattedDate     string
	MatchedEntryID    *uuid.UUID
	HasAppointments   bool
	HumanReadableDate *string
}

// InterpretClick resolves one clicked date. It returns nil when any active guard fires:
// the date lies outside the visible month/year, falls on a day-off weekday, or is closed.
// All guards are pure predicates, so their order does not change the result.
func InterpretClick(
	clicked time.Time,
	visibleMonth time.Month,
	visibleYear int,
	rules *Rules,
	entries []domain.ScheduleEntry,
	appointmentDates DateSet,
	opts ClickOptions,
) *ClickResult {
	if opts.BlockOutsideMonth && (clicked.Month() != visibleMonth || clicked.Year() != visibleYear) {
		return nil
	}
	if opts.BlockDayOffs && rules.IsDayOff(clicked) {
		return nil
	}
	if opts.BlockClosedDates && rules.IsClosed(clicked) {
		return nil
	}

	formatted := domain.FormatDate(clicked)
	result := &ClickResult{
		FormattedDate:   formatted,
		MatchedEntryID:  matchEntry(entries, formatted),
		HasAppointments: appointmentDates.Contains(formatted),
	}

	if opts.ReturnCustomDate {
		var names []string
		if rules != nil {
			names = rules.WeekdayNames
		}
		result.HumanReadableDate = ptr.Ptr(HumanReadableDate(clicked, names))
	}

	return result
}

// HumanReadableDate formats t as "Monday • March 5 - 2025".
// The weekday comes from weekdayNames (English when the list is empty); month names are always English.
func HumanReadableDate(t time.Time, weekdayNames []string) string {
	weekday := domain.WeekdayName(weekdayNames, t.Weekday())
	return fmt.Sprintf("%s • %s %d - %d", weekday, t.Month(), t.Day(), t.Year())
}

func matchEntry(entries []domain.ScheduleEntry, date string) *uuid.UUID {
	for _, entry := range entries {
		if entry.DateString() == date && date != "" {
			return ptr.Ptr(entry.ID)
		}
	}
	return nil
}
