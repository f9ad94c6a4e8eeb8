package get_calendar_events

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

var (
	// ErrMalformedSchedule возвращается, когда сохранённая строка выходных содержит неизвестный день
	ErrMalformedSchedule = fmt.Errorf("get_calendar_events: stored day-off row is malformed: %w", scheduling.ErrConfiguration)

	// ErrInvalidTimeRange возвращается, когда начало периода позже конца
	ErrInvalidTimeRange = errors.New("get_calendar_events: invalid time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_events: internal error")
)
