package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is a row of the salon schedule.
// A closed row (IsClosed) carries one explicitly closed Date.
// The single non-closed row carries the recurring DayOff weekday names.
type ScheduleEntry struct {
	ID        uuid.UUID
	IsClosed  bool
	Date      *time.Time // set only for closed rows
	DayOff    []string   // set only on the day-off row
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDayOffRow returns true for the recurring day-off singleton row
func (e *ScheduleEntry) IsDayOffRow() bool {
	return !e.IsClosed
}

// HasDate returns true if the entry carries a calendar date
func (e *ScheduleEntry) HasDate() bool {
	return e.Date != nil
}

// DateString returns the entry date as YYYY-MM-DD, or "" when the entry has no date
func (e *ScheduleEntry) DateString() string {
	if e.Date == nil {
		return ""
	}
	return FormatDate(*e.Date)
}

// NewClosedEntry builds a closed-date entry for the given day
func NewClosedEntry(id uuid.UUID, date time.Time) ScheduleEntry {
	d := DateOnly(date)
	return ScheduleEntry{
		ID:       id,
		IsClosed: true,
		Date:     &d,
	}
}
