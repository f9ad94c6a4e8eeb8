package interpret_click

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

var (
	// ErrUnknownView возвращается для неизвестного представления календаря
	ErrUnknownView = errors.New("interpret_click: unknown view")

	// ErrMalformedSchedule возвращается, когда сохранённая строка выходных содержит неизвестный день
	ErrMalformedSchedule = fmt.Errorf("interpret_click: stored day-off row is malformed: %w", scheduling.ErrConfiguration)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("interpret_click: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("interpret_click: internal error")
)
