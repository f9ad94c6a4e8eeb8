package interpret_click

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	clickUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/interpret_click"
)

const (
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidMonth      = "некорректный месяц или год"
	msgInvalidFlag       = "некорректное значение флага"
	msgUnknownView       = "неизвестный вид календаря"
	msgMalformedSchedule = "в расписании указан неизвестный день недели, исправьте список выходных"
)

type Handler struct {
	useCase ClickUseCase
	logger  Logger
}

func NewHandler(useCase ClickUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/click?date=&month=&year=&view=
// Для view=custom флаги передаются параметрами blockDayOffs, blockClosedDates, blockOutsideMonth, returnCustomDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil || date == nil {
		h.logger.Warn("GET /schedule/click - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	month, errMonth := handlers.QueryInt(r, "month")
	year, errYear := handlers.QueryInt(r, "year")
	if errMonth != nil || errYear != nil {
		h.logger.Warn("GET /schedule/click - Invalid month/year: %v %v", errMonth, errYear)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	req := &clickUC.Request{
		Date:         *date,
		VisibleMonth: time.Month(month),
		VisibleYear:  year,
		View:         clickUC.View(r.URL.Query().Get("view")),
	}

	if req.View == clickUC.ViewCustom {
		opts, err := parseOptions(r)
		if err != nil {
			h.logger.Warn("GET /schedule/click - Invalid flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFlag)
			return
		}
		req.Options = opts
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, clickUC.ErrUnknownView):
			h.logger.Warn("GET /schedule/click - Unknown view: %s", req.View)
			handlers.RespondBadRequest(w, msgUnknownView)

		case errors.Is(err, clickUC.ErrInvalidInput):
			h.logger.Warn("GET /schedule/click - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, scheduling.ErrConfiguration):
			h.logger.Error("GET /schedule/click - Malformed schedule: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMalformedSchedule)

		default:
			h.logger.Error("GET /schedule/click - Failed to interpret click: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/click - date=%s, actionable=%v", r.URL.Query().Get("date"), resp.Actionable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

func parseOptions(r *http.Request) (*scheduling.ClickOptions, error) {
	var (
		opts scheduling.ClickOptions
		err  error
	)

	if opts.BlockDayOffs, err = handlers.QueryBool(r, "blockDayOffs", false); err != nil {
		return nil, err
	}
	if opts.BlockClosedDates, err = handlers.QueryBool(r, "blockClosedDates", false); err != nil {
		return nil, err
	}
	if opts.BlockOutsideMonth, err = handlers.QueryBool(r, "blockOutsideMonth", false); err != nil {
		return nil, err
	}
	if opts.ReturnCustomDate, err = handlers.QueryBool(r, "returnCustomDate", false); err != nil {
		return nil, err
	}

	return &opts, nil
}
