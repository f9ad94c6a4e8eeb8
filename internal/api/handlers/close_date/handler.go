package close_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyClosed      = "эта дата уже закрыта"
	msgMissingAdminID     = "требуется авторизация администратора"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем adminID из контекста (через middleware Auth)
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/closed-dates - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req CloseDateRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /schedule/closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /schedule/closed-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := h.service.CloseDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConflict):
			h.logger.Warn("POST /schedule/closed-dates - Date already closed: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyClosed)

		default:
			h.logger.Error("POST /schedule/closed-dates - Failed to close date=%s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/closed-dates - Date closed: date=%s, id=%s, admin_id=%s", req.Date, entry.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, entry)
}
