// Package scheduling holds the pure calendar rules of the salon: recurring day-offs, closed dates,
// date-click interpretation and closed-day toggling. Functions here never perform I/O and operate
// on snapshots passed in by the caller.
package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// WeekdaySet is a set of canonical weekday indices (0=Sunday..6=Saturday)
type WeekdaySet map[time.Weekday]struct{}

// Contains reports whether d is in the set
func (s WeekdaySet) Contains(d time.Weekday) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the indices in ascending order
func (s WeekdaySet) Sorted() []time.Weekday {
	out := make([]time.Weekday, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DateSet is a set of YYYY-MM-DD dates
type DateSet map[string]struct{}

// Contains reports whether the formatted date is in the set
func (s DateSet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// ContainsDate reports whether the calendar date of t is in the set
func (s DateSet) ContainsDate(t time.Time) bool {
	return s.Contains(domain.FormatDate(t))
}

// Sorted returns the dates in ascending order
func (s DateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// WeekdayOffIndices maps every day_off name of every entry to its canonical index.
// weekdayNames is the Sunday-first 7-name ordering. An invalid ordering or an unknown
// name fails with ErrConfiguration.
func WeekdayOffIndices(entries []domain.ScheduleEntry, weekdayNames []string) (WeekdaySet, error) {
	if err := domain.ValidateWeekdayNames(weekdayNames); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	set := make(WeekdaySet)
	for _, entry := range entries {
		for _, name := range entry.DayOff {
			d, err := domain.LookupWeekday(weekdayNames, name)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %s: %w", ErrConfiguration, entry.ID, err)
			}
			set[d] = struct{}{}
		}
	}

	return set, nil
}

// ClosedDateSet collects the date of every entry that carries one
func ClosedDateSet(entries []domain.ScheduleEntry) DateSet {
	set := make(DateSet)
	for _, entry := range entries {
		if entry.HasDate() {
			set[entry.DateString()] = struct{}{}
		}
	}
	return set
}

// IsBookable is false when the weekday of date is a day-off or the date is closed, true otherwise
func IsBookable(date time.Time, dayOffs WeekdaySet, closed DateSet) bool {
	if dayOffs.Contains(date.Weekday()) {
		return false
	}
	return !closed.ContainsDate(date)
}

// ActiveAppointmentDates returns the dates holding at least one non-cancelled appointment
func ActiveAppointmentDates(appointments []domain.Appointment) DateSet {
	set := make(DateSet)
	for i := range appointments {
		if appointments[i].IsActive() {
			set[appointments[i].DateString()] = struct{}{}
		}
	}
	return set
}

// Rules bundles the derived sets of one schedule snapshot
type Rules struct {
	DayOffs     WeekdaySet
	ClosedDates DateSet
	// WeekdayNames is the ordering the day-offs were resolved with
	WeekdayNames []string
}

// DeriveRules computes both sets from a snapshot
func DeriveRules(entries []domain.ScheduleEntry, weekdayNames []string) (*Rules, error) {
	dayOffs, err := WeekdayOffIndices(entries, weekdayNames)
	if err != nil {
		return nil, err
	}

	return &Rules{
		DayOffs:      dayOffs,
		ClosedDates:  ClosedDateSet(entries),
		WeekdayNames: weekdayNames,
	}, nil
}

// IsDayOff reports whether the weekday of date is a recurring day-off
func (r *Rules) IsDayOff(date time.Time) bool {
	if r == nil {
		return false
	}
	return r.DayOffs.Contains(date.Weekday())
}

// IsClosed reports whether date is explicitly closed
func (r *Rules) IsClosed(date time.Time) bool {
	if r == nil {
		return false
	}
	return r.ClosedDates.ContainsDate(date)
}

// IsBookable applies IsBookable to the derived sets
func (r *Rules) IsBookable(date time.Time) bool {
	if r == nil {
		return true
	}
	return IsBookable(date, r.DayOffs, r.ClosedDates)
}
