package toggle_closed_day

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// Request модель запроса на переключение закрытого дня
type Request struct {
	Date time.Time // Нажатая дата (время отбрасывается)
}

// Response результат переключения
type Response struct {
	Action               scheduling.Action // close или unmark
	Date                 string            // YYYY-MM-DD
	EntryID              uuid.UUID         // ID созданной или удалённой записи
	AffectedAppointments []uuid.UUID       // Активные записи на закрытую дату (только для close)
}
