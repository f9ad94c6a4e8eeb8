package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a raw status value
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAppointmentStatus, s)
	}
}

// Appointment is a customer booking for a calendar date
type Appointment struct {
	ID              uuid.UUID
	CustomerName    string
	ContactInfo     string
	TreatmentID     *uuid.UUID
	Treatment       string // denormalized treatment name
	AppointmentDate time.Time
	Status          AppointmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the appointment still occupies its date
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}

// CanBeConfirmed returns true if the appointment can move to confirmed
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == AppointmentPending
}

// CanBeCancelled returns true if the appointment can move to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// DateString returns the appointment date as YYYY-MM-DD
func (a *Appointment) DateString() string {
	return FormatDate(a.AppointmentDate)
}

// AppointmentsFilter фильтр для получения записей
type AppointmentsFilter struct {
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
