package notifier

import (
	"time"

	"github.com/google/uuid"
)

// RoutingKeyClosedDayConflict ключ маршрутизации события о закрытии дня с записями
const RoutingKeyClosedDayConflict = "schedule.closed_day.conflict"

// ClosedDayConflict событие: дата закрыта, но на неё есть активные записи
type ClosedDayConflict struct {
	EventID        uuid.UUID   `json:"eventId"`
	Date           string      `json:"date"`
	EntryID        uuid.UUID   `json:"entryId"`
	AppointmentIDs []uuid.UUID `json:"appointmentIds"`
	OccurredAt     time.Time   `json:"occurredAt"`
}
