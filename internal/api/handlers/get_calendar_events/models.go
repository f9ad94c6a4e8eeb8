package get_calendar_events

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// EventResponse событие календаря в формате, понятном календарному виджету
type EventResponse struct {
	Kind             string     `json:"kind"`
	Title            string     `json:"title,omitempty"`
	Start            string     `json:"start,omitempty"`
	DaysOfWeek       []int      `json:"daysOfWeek,omitempty"`
	AllDay           bool       `json:"allDay"`
	Display          string     `json:"display"`
	Color            string     `json:"color"`
	EntryID          *uuid.UUID `json:"entryId,omitempty"`
	AppointmentCount int        `json:"appointmentCount,omitempty"`
}

// EventsResponse HTTP response model
type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

// FromEvents конвертирует события в HTTP модель с сохранением порядка
func FromEvents(events []scheduling.CalendarEvent) *EventsResponse {
	resp := &EventsResponse{Events: make([]EventResponse, 0, len(events))}

	for _, e := range events {
		resp.Events = append(resp.Events, EventResponse{
			Kind:             string(e.Kind),
			Title:            e.Title,
			Start:            e.Start,
			DaysOfWeek:       e.DaysOfWeek,
			AllDay:           e.AllDay,
			Display:          e.Display,
			Color:            e.Color,
			EntryID:          e.EntryID,
			AppointmentCount: e.AppointmentCount,
		})
	}

	return resp
}
