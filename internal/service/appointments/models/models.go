package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// Request модели

// ListRequest фильтр списка записей
type ListRequest struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *domain.AppointmentStatus
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
func (r *ListRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Status:           r.Status,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// AppointmentResponse запись клиента
type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerName    string     `json:"customerName"`
	ContactInfo     string     `json:"contactInfo"`
	TreatmentID     *uuid.UUID `json:"treatmentId,omitempty"`
	Treatment       string     `json:"treatment"`
	AppointmentDate string     `json:"appointmentDate"` // YYYY-MM-DD
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		ContactInfo:     a.ContactInfo,
		TreatmentID:     a.TreatmentID,
		Treatment:       a.Treatment,
		AppointmentDate: a.DateString(),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for i := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(&appointments[i]))
	}

	return resp
}
