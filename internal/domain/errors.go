package domain

import "errors"

var (
	// ErrUnknownWeekday is returned when a weekday name is outside the configured 7-name set
	ErrUnknownWeekday = errors.New("domain: unknown weekday name")

	// ErrInvalidWeekdayNames is returned when a weekday name list is not 7 distinct non-empty names
	ErrInvalidWeekdayNames = errors.New("domain: invalid weekday name list")

	// ErrInvalidDate is returned when a date string is not in DateFormat
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrUnknownAppointmentStatus is returned for a status outside pending/confirmed/cancelled
	ErrUnknownAppointmentStatus = errors.New("domain: unknown appointment status")
)
