package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// Action is the mutation implied by clicking a date in closed-day mode
type Action string

const (
	ActionClose  Action = "close"
	ActionUnmark Action = "unmark"
)

// Decision is the outcome of Decide
type Decision struct {
	Action   Action
	Date     string
	TargetID *uuid.UUID // set for ActionUnmark
}

// Decide returns unmark with the matching entry id if some entry has the date, close otherwise
func Decide(date time.Time, entries []domain.ScheduleEntry) Decision {
	formatted := domain.FormatDate(date)
	if id := matchEntry(entries, formatted); id != nil {
		return Decision{Action: ActionUnmark, Date: formatted, TargetID: id}
	}
	return Decision{Action: ActionClose, Date: formatted}
}

// Validate checks the decision preconditions against entries
func (d Decision) Validate(entries []domain.ScheduleEntry) error {
	switch d.Action {
	case ActionClose:
		date, err := domain.ParseDate(d.Date)
		if err != nil {
			return err
		}
		return CheckClose(date, entries)
	case ActionUnmark:
		if d.TargetID == nil {
			return fmt.Errorf("%w: no entry id for %s", ErrNotFound, d.Date)
		}
		return CheckUnmark(*d.TargetID, entries)
	default:
		return fmt.Errorf("scheduling: unknown action %q", d.Action)
	}
}

// Apply returns a new snapshot with the decision applied. Closing assigns a fresh id.
func (d Decision) Apply(entries []domain.ScheduleEntry) []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, 0, len(entries)+1)

	switch d.Action {
	case ActionClose:
		out = append(out, entries...)
		date, err := domain.ParseDate(d.Date)
		if err != nil {
			return out
		}
		return append(out, domain.NewClosedEntry(uuid.New(), date))
	case ActionUnmark:
		for _, entry := range entries {
			if d.TargetID != nil && entry.ID == *d.TargetID {
				continue
			}
			out = append(out, entry)
		}
		return out
	default:
		return append(out, entries...)
	}
}

// CheckClose fails with ErrConflict when date already has an entry
func CheckClose(date time.Time, entries []domain.ScheduleEntry) error {
	formatted := domain.FormatDate(date)
	if id := matchEntry(entries, formatted); id != nil {
		return fmt.Errorf("%w: %s (entry %s)", ErrConflict, formatted, *id)
	}
	return nil
}

// CheckUnmark fails with ErrNotFound when no dated entry has id
func CheckUnmark(id uuid.UUID, entries []domain.ScheduleEntry) error {
	for _, entry := range entries {
		if entry.ID == id && entry.HasDate() {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
