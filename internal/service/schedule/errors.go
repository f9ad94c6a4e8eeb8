package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

var (
	// ErrDateAlreadyClosed возвращается при попытке закрыть уже закрытую дату
	ErrDateAlreadyClosed = fmt.Errorf("schedule: date is already closed: %w", scheduling.ErrConflict)

	// ErrEntryNotFound возвращается, когда запись расписания не найдена
	ErrEntryNotFound = fmt.Errorf("schedule: entry not found: %w", scheduling.ErrNotFound)

	// ErrInvalidWeekday возвращается, когда имя дня недели не входит в настроенный список
	ErrInvalidWeekday = fmt.Errorf("schedule: invalid weekday: %w", scheduling.ErrConfiguration)

	// ErrMalformedSchedule возвращается, когда сохранённая строка выходных содержит неизвестный день
	ErrMalformedSchedule = fmt.Errorf("schedule: stored day-off row is malformed: %w", scheduling.ErrConfiguration)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
