package toggle_closed_day

import (
	"github.com/google/uuid"

	toggleUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/toggle_closed_day"
)

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// ToggleResponse HTTP response model
type ToggleResponse struct {
	Action               string      `json:"action"`
	Date                 string      `json:"date"`
	EntryID              uuid.UUID   `json:"entryId"`
	AffectedAppointments []uuid.UUID `json:"affectedAppointments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *toggleUC.Response) *ToggleResponse {
	affected := resp.AffectedAppointments
	if affected == nil {
		affected = []uuid.UUID{}
	}

	return &ToggleResponse{
		Action:               string(resp.Action),
		Date:                 resp.Date,
		EntryID:              resp.EntryID,
		AffectedAppointments: affected,
	}
}
