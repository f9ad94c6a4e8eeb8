package get_calendar_events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
	eventsUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/get_calendar_events"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

type stubUseCase struct {
	err    error
	events []scheduling.CalendarEvent
	got    *eventsUC.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *eventsUC.Request) (*eventsUC.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &eventsUC.Response{Events: s.events}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantCalled bool
		wantError  string
	}{
		{name: "all events", query: "", wantStatus: http.StatusOK, wantCalled: true},
		{name: "bounded", query: "?from=2025-03-01&to=2025-03-31", wantStatus: http.StatusOK, wantCalled: true},
		{name: "bad date", query: "?from=2025-02-30", wantStatus: http.StatusBadRequest, wantError: msgInvalidDate},
		{name: "bad flag", query: "?appointments=maybe", wantStatus: http.StatusBadRequest, wantError: msgInvalidFlag},
		{
			name:       "inverted range",
			query:      "?from=2025-03-31&to=2025-03-01",
			err:        eventsUC.ErrInvalidTimeRange,
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
			wantError:  msgInvalidRange,
		},
		{
			name:       "malformed schedule",
			err:        fmt.Errorf("%w: entry 1: %q", scheduling.ErrConfiguration, "Funday"),
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
			wantError:  msgMalformedSchedule,
		},
		{name: "storage failure", err: eventsUC.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := NewHandler(uc, logger.NewNop())
			r := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, uc.got != nil)
			if tt.wantError != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}

func TestHandleKeepsEventOrder(t *testing.T) {
	uc := &stubUseCase{events: []scheduling.CalendarEvent{
		{Kind: scheduling.EventClosed, Start: "2025-03-12", AllDay: true},
		{Kind: scheduling.EventDayOff, DaysOfWeek: []int{0}, AllDay: true},
		{Kind: scheduling.EventAppointment, Start: "2025-03-10", AppointmentCount: 2},
	}}
	h := NewHandler(uc, logger.NewNop())
	r := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events?appointments=false", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got)
	assert.False(t, uc.got.IncludeAppointments)
	assert.Nil(t, uc.got.StartDate)

	var body EventsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Events, 3)
	assert.Equal(t, "closed", body.Events[0].Kind)
	assert.Equal(t, "day_off", body.Events[1].Kind)
	assert.Equal(t, 2, body.Events[2].AppointmentCount)
}
