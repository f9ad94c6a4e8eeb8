package toggle_closed_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	toggleUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/toggle_closed_day"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStaleClose         = "дату уже закрыли, обновите календарь"
	msgStaleUnmark        = "отметка уже снята, обновите календарь"
	msgMissingAdminID     = "требуется авторизация администратора"
)

type Handler struct {
	useCase ToggleUseCase
	logger  Logger
}

func NewHandler(useCase ToggleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/closed-dates/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем adminID из контекста (через middleware Auth)
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/closed-dates/toggle - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req ToggleRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /schedule/closed-dates/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /schedule/closed-dates/toggle - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &toggleUC.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConflict):
			h.logger.Warn("POST /schedule/closed-dates/toggle - Stale close: date=%s", req.Date)
			handlers.RespondConflict(w, msgStaleClose)

		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("POST /schedule/closed-dates/toggle - Stale unmark: date=%s", req.Date)
			handlers.RespondNotFound(w, msgStaleUnmark)

		case errors.Is(err, toggleUC.ErrInvalidInput):
			h.logger.Warn("POST /schedule/closed-dates/toggle - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/closed-dates/toggle - Failed to toggle date=%s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/closed-dates/toggle - Toggled: date=%s, action=%s, admin_id=%s", resp.Date, resp.Action, adminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
