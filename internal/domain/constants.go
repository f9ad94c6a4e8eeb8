package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysInWeek number of canonical weekday names
const DaysInWeek = 7

