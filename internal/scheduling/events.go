package scheduling

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/ptr"
)

// EventKind classifies a calendar event
type EventKind string

const (
	EventClosed      EventKind = "closed"
	EventDayOff      EventKind = "day_off"
	EventAppointment EventKind = "appointment"
)

// Display modes understood by calendar renderers
const (
	DisplayBackground = "background"
	DisplayAuto       = "auto"
)

// Event colors
const (
	ColorClosed      = "red"
	ColorDayOff      = "#d3d3d3"
	ColorAppointment = "#3b82f6"
)

// CalendarEvent is one renderable calendar item.
// Closed and appointment events carry Start; day-off events carry DaysOfWeek.
type CalendarEvent struct {
	Kind             EventKind
	Title            string
	Start            string
	DaysOfWeek       []int
	AllDay           bool
	Display          string
	Color            string
	EntryID          *uuid.UUID
	AppointmentCount int
}

// RenderEvents builds calendar events: closed dates first, then day-off weekdays, then
// appointment dates. The order is a layering contract for renderers. Appointments may be nil;
// cancelled appointments are skipped and the rest are grouped by date in first-seen order.
func RenderEvents(entries []domain.ScheduleEntry, weekdayNames []string, appointments []domain.Appointment) ([]CalendarEvent, error) {
	dayOffs, err := WeekdayOffIndices(entries, weekdayNames)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(entries)+len(dayOffs))

	for _, entry := range entries {
		if !entry.HasDate() {
			continue
		}
		events = append(events, CalendarEvent{
			Kind:    EventClosed,
			Start:   entry.DateString(),
			AllDay:  true,
			Display: DisplayBackground,
			Color:   ColorClosed,
			EntryID: ptr.Ptr(entry.ID),
		})
	}

	for _, d := range dayOffs.Sorted() {
		events = append(events, CalendarEvent{
			Kind:       EventDayOff,
			Title:      domain.WeekdayName(weekdayNames, d),
			DaysOfWeek: []int{int(d)},
			Display:    DisplayBackground,
			Color:      ColorDayOff,
		})
	}

	return append(events, appointmentEvents(appointments)...), nil
}

func appointmentEvents(appointments []domain.Appointment) []CalendarEvent {
	counts := make(map[string]int)
	var order []string

	for i := range appointments {
		if !appointments[i].IsActive() {
			continue
		}
		date := appointments[i].DateString()
		if _, ok := counts[date]; !ok {
			order = append(order, date)
		}
		counts[date]++
	}

	events := make([]CalendarEvent, 0, len(order))
	for _, date := range order {
		events = append(events, CalendarEvent{
			Kind:             EventAppointment,
			Title:            appointmentTitle(counts[date]),
			Start:            date,
			AllDay:           true,
			Display:          DisplayAuto,
			Color:            ColorAppointment,
			AppointmentCount: counts[date],
		})
	}
	return events
}

func appointmentTitle(n int) string {
	if n == 1 {
		return "1 appointment"
	}
	return fmt.Sprintf("%d appointments", n)
}
