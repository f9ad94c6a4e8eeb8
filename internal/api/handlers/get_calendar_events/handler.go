package get_calendar_events

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	eventsUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/get_calendar_events"
)

const (
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidFlag       = "некорректное значение параметра appointments"
	msgInvalidRange      = "начало периода позже конца"
	msgMalformedSchedule = "в расписании указан неизвестный день недели, исправьте список выходных"
)

type Handler struct {
	useCase EventsUseCase
	logger  Logger
}

func NewHandler(useCase EventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events?from=&to=&appointments=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, errFrom := handlers.QueryDate(r, "from")
	to, errTo := handlers.QueryDate(r, "to")
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /calendar/events - Invalid range: %v %v", errFrom, errTo)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	withAppointments, err := handlers.QueryBool(r, "appointments", true)
	if err != nil {
		h.logger.Warn("GET /calendar/events - Invalid appointments flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &eventsUC.Request{
		StartDate:           from,
		EndDate:             to,
		IncludeAppointments: withAppointments,
	})
	if err != nil {
		switch {
		case errors.Is(err, eventsUC.ErrInvalidTimeRange):
			h.logger.Warn("GET /calendar/events - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, scheduling.ErrConfiguration):
			h.logger.Error("GET /calendar/events - Malformed schedule: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMalformedSchedule)

		default:
			h.logger.Error("GET /calendar/events - Failed to render events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/events - Rendered %d events", len(resp.Events))
	handlers.RespondJSON(w, http.StatusOK, FromEvents(resp.Events))
}
