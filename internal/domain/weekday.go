package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekdayNames is the canonical weekday ordering: index 0 is Sunday, index 6 is Saturday.
// The index of a name equals the matching time.Weekday value.
var WeekdayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// ValidateWeekdayNames checks that names holds exactly 7 distinct non-empty names.
// A custom list (for example a localized one) keeps the canonical Sunday-first order.
func ValidateWeekdayNames(names []string) error {
	if len(names) != DaysInWeek {
		return fmt.Errorf("%w: expected %d names, got %d", ErrInvalidWeekdayNames, DaysInWeek, len(names))
	}

	seen := make(map[string]struct{}, DaysInWeek)
	for i, name := range names {
		key := normalizeWeekday(name)
		if key == "" {
			return fmt.Errorf("%w: empty name at index %d", ErrInvalidWeekdayNames, i)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidWeekdayNames, name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// LookupWeekday maps a name to its canonical index using the given ordering.
// Matching ignores case and surrounding spaces. Unknown names return ErrUnknownWeekday.
func LookupWeekday(names []string, name string) (time.Weekday, error) {
	key := normalizeWeekday(name)
	for i, candidate := range names {
		if normalizeWeekday(candidate) == key && key != "" {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// WeekdayName returns the name of d in the given ordering
func WeekdayName(names []string, d time.Weekday) string {
	if int(d) < 0 || int(d) >= len(names) {
		return d.String()
	}
	return names[d]
}

func normalizeWeekday(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
