package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/ptr"
)

// Request модели

// SetDayOffRequest запрос на замену списка выходных дней недели
type SetDayOffRequest struct {
	Days []string `json:"days"`
}

// Response модели

// EntryResponse запись расписания
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	IsClosed  bool      `json:"isClosed"`
	Date      *string   `json:"date,omitempty"`   // только для закрытых дат
	DayOff    []string  `json:"dayOff,omitempty"` // только для строки выходных
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleResponse снимок расписания
type ScheduleResponse struct {
	Entries     []EntryResponse `json:"entries"`
	DayOff      []string        `json:"dayOff"`
	ClosedDates []string        `json:"closedDates"`
}

// AvailabilityResponse результат проверки доступности даты
type AvailabilityResponse struct {
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
	DayOff   bool   `json:"dayOff"`
	Closed   bool   `json:"closed"`
}

// Методы конвертации

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.ScheduleEntry) *EntryResponse {
	if e == nil {
		return nil
	}

	resp := &EntryResponse{
		ID:        e.ID,
		IsClosed:  e.IsClosed,
		DayOff:    e.DayOff,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.HasDate() {
		resp.Date = ptr.Ptr(e.DateString())
	}

	return resp
}

// FromDomainSchedule собирает снимок расписания из записей
func FromDomainSchedule(entries []domain.ScheduleEntry) *ScheduleResponse {
	resp := &ScheduleResponse{
		Entries:     make([]EntryResponse, 0, len(entries)),
		DayOff:      []string{},
		ClosedDates: []string{},
	}

	for i := range entries {
		entry := &entries[i]
		resp.Entries = append(resp.Entries, *FromDomainEntry(entry))

		if entry.IsDayOffRow() {
			resp.DayOff = append(resp.DayOff, entry.DayOff...)
			continue
		}
		if entry.HasDate() {
			resp.ClosedDates = append(resp.ClosedDates, entry.DateString())
		}
	}

	return resp
}
