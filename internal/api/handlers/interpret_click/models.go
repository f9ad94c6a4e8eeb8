package interpret_click

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	clickUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/interpret_click"
)

// ClickResultResponse данные по нажатой дате
type ClickResultResponse struct {
	FormattedDate     string     `json:"formattedDate"`
	MatchedEntryID    *uuid.UUID `json:"matchedEntryId,omitempty"`
	HasAppointments   bool       `json:"hasAppointments"`
	HumanReadableDate *string    `json:"humanReadableDate,omitempty"`
}

// SuggestedActionResponse действие, которое выполнит переключение закрытого дня
type SuggestedActionResponse struct {
	Action   string     `json:"action"`
	Date     string     `json:"date"`
	TargetID *uuid.UUID `json:"targetId,omitempty"`
}

// ClickResponse HTTP response model
// Actionable=false означает, что клик нужно игнорировать
type ClickResponse struct {
	Actionable      bool                     `json:"actionable"`
	Result          *ClickResultResponse     `json:"result,omitempty"`
	SuggestedAction *SuggestedActionResponse `json:"suggestedAction,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *clickUC.Response) *ClickResponse {
	out := &ClickResponse{Actionable: resp.Actionable}

	if resp.Result != nil {
		out.Result = fromClickResult(resp.Result)
	}
	if resp.SuggestedAction != nil {
		out.SuggestedAction = &SuggestedActionResponse{
			Action:   string(resp.SuggestedAction.Action),
			Date:     resp.SuggestedAction.Date,
			TargetID: resp.SuggestedAction.TargetID,
		}
	}

	return out
}

func fromClickResult(r *scheduling.ClickResult) *ClickResultResponse {
	return &ClickResultResponse{
		FormattedDate:     r.FormattedDate,
		MatchedEntryID:    r.MatchedEntryID,
		HasAppointments:   r.HasAppointments,
		HumanReadableDate: r.HumanReadableDate,
	}
}
