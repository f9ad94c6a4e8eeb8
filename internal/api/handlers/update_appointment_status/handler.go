package update_appointment_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgCannotConfirm        = "подтвердить можно только ожидающую запись"
	msgCannotCancel         = "запись уже отменена"
	msgConcurrentUpdate     = "запись изменена другим администратором, обновите страницу"
	msgMissingAdminID       = "требуется авторизация администратора"
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

// HandleConfirm PUT /api/v1/appointments/{appointmentId}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PUT /appointments/{id}/confirm", h.service.Confirm, msgCannotConfirm)
}

// HandleCancel PUT /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PUT /appointments/{id}/cancel", h.service.Cancel, msgCannotCancel)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	apply func(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error),
	msgInvalidTransition string,
) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("%s - Invalid appointment ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем adminID из контекста (через middleware Auth)
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing admin ID", route)
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	appointment, err := apply(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("%s - Appointment not found: id=%s", route, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("%s - Invalid transition: id=%s, error=%v", route, appointmentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrConcurrentUpdate):
			h.logger.Warn("%s - Concurrent update: id=%s, error=%v", route, appointmentID, err)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("%s - Failed to update appointment: id=%s, error=%v", route, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment updated: id=%s, status=%s, admin_id=%s", route, appointmentID, appointment.Status, adminID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
