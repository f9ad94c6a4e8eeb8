package set_day_off

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeekday     = "неизвестный день недели"
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

// Handle POST /api/v1/schedule/day-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем adminID из контекста (через middleware Auth)
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/day-off - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	var req SetDayOffRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /schedule/day-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := h.service.SetDayOff(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday):
			h.logger.Warn("POST /schedule/day-off - Invalid weekday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/day-off - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/day-off - Failed to set day-offs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/day-off - Day-offs set: %v, admin_id=%s", entry.DayOff, adminID)
	handlers.RespondJSON(w, http.StatusOK, entry)
}
