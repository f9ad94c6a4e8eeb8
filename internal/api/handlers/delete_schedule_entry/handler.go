package delete_schedule_entry

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule"
)

const (
	msgInvalidEntryID = "некорректный ID записи расписания"
	msgNotFound       = "запись расписания не найдена"
	msgDayOffRow      = "строку выходных нельзя удалить, измените список выходных"
	msgMissingAdminID = "требуется авторизация администратора"
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

// Handle DELETE /api/v1/schedule/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(mux.Vars(r)["entryId"])
	if err != nil {
		h.logger.Warn("DELETE /schedule/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	// Получаем adminID из контекста (через middleware Auth)
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedule/{id} - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	if err := h.service.DeleteEntry(r.Context(), entryID); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("DELETE /schedule/{id} - Entry not found: id=%s", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /schedule/{id} - Refused: id=%s, error=%v", entryID, err)
			handlers.RespondBadRequest(w, msgDayOffRow)

		default:
			h.logger.Error("DELETE /schedule/{id} - Failed to delete entry: id=%s, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/{id} - Entry deleted: id=%s, admin_id=%s", entryID, adminID)
	handlers.RespondNoContent(w)
}
