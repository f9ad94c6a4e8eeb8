package get_appointments

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус записи"
	msgInvalidFlag   = "некорректное значение параметра includeCancelled"
	msgInvalidRange  = "начало периода позже конца"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?from=&to=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, errFrom := handlers.QueryDate(r, "from")
	to, errTo := handlers.QueryDate(r, "to")
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /appointments - Invalid range: %v %v", errFrom, errTo)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled", false)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid includeCancelled: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	req := &models.ListRequest{
		StartDate:        from,
		EndDate:          to,
		IncludeCancelled: includeCancelled,
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, err := domain.ParseAppointmentStatus(raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidTimeRange):
			h.logger.Warn("GET /appointments - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments", len(list.Appointments))
	handlers.RespondJSON(w, http.StatusOK, list)
}
