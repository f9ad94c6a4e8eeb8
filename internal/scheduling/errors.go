package scheduling

import "errors"

var (
	// ErrConfiguration is returned when a weekday name falls outside the configured 7-name set
	ErrConfiguration = errors.New("scheduling: configuration error")

	// ErrConflict is returned when closing a date that is already closed
	ErrConflict = errors.New("scheduling: date is already closed")

	// ErrNotFound is returned when unmarking a date with no resolvable entry
	ErrNotFound = errors.New("scheduling: schedule entry not found")

	// ErrStaleSnapshot marks a decision made against an out-of-date snapshot.
	// It is only detected through a storage conflict on write and is always joined with ErrConflict or ErrNotFound.
	ErrStaleSnapshot = errors.New("scheduling: schedule snapshot is stale")
)
