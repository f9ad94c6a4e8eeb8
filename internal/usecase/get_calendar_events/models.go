package get_calendar_events

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// Request модель запроса событий календаря
type Request struct {
	StartDate           *time.Time // Начало периода для записей (опционально)
	EndDate             *time.Time // Конец периода для записей (опционально)
	IncludeAppointments bool       // Добавлять ли события записей
}

// Response события календаря: закрытые даты, затем выходные, затем записи
type Response struct {
	Events []scheduling.CalendarEvent
}
