package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

const (
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgMalformedSchedule = "в расписании указан неизвестный день недели, исправьте список выходных"
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

// Handle GET /api/v1/schedule/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == nil {
		h.logger.Warn("GET /schedule/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), *date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConfiguration):
			h.logger.Error("GET /schedule/availability - Malformed schedule: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMalformedSchedule)

		default:
			h.logger.Error("GET /schedule/availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/availability - date=%s, bookable=%v", availability.Date, availability.Bookable)
	handlers.RespondJSON(w, http.StatusOK, availability)
}
