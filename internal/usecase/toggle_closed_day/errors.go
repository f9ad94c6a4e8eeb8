package toggle_closed_day

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

var (
	// ErrConflict возвращается, когда дату закрыли параллельно с нашим решением
	ErrConflict = fmt.Errorf("toggle_closed_day: date is already closed: %w", scheduling.ErrConflict)

	// ErrNotFound возвращается, когда закрытую дату удалили параллельно с нашим решением
	ErrNotFound = fmt.Errorf("toggle_closed_day: schedule entry not found: %w", scheduling.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("toggle_closed_day: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_closed_day: internal error")
)

// Метки для метрики конфликтов
const (
	conflictKindClose  = "close"
	conflictKindUnmark = "unmark"
)
