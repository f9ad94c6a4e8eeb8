package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

type stubService struct {
	err  error
	got  time.Time
	hits int
}

func (s *stubService) CheckAvailability(_ context.Context, date time.Time) (*models.AvailabilityResponse, error) {
	s.hits++
	s.got = date
	if s.err != nil {
		return nil, s.err
	}
	return &models.AvailabilityResponse{Date: date.Format("2006-01-02"), Bookable: true}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantHits   int
		wantError  string
	}{
		{name: "bookable", query: "?date=2025-03-10", wantStatus: http.StatusOK, wantHits: 1},
		{name: "missing date", query: "", wantStatus: http.StatusBadRequest, wantError: msgInvalidDate},
		{name: "bad date", query: "?date=10.03.2025", wantStatus: http.StatusBadRequest, wantError: msgInvalidDate},
		{
			name:       "malformed schedule",
			query:      "?date=2025-03-10",
			err:        fmt.Errorf("%w: entry 1: %q", schedule.ErrMalformedSchedule, "Funday"),
			wantStatus: http.StatusInternalServerError,
			wantHits:   1,
			wantError:  msgMalformedSchedule,
		},
		{name: "storage failure", query: "?date=2025-03-10", err: schedule.ErrInternal, wantStatus: http.StatusInternalServerError, wantHits: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			h := NewHandler(svc, logger.NewNop())
			r := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/availability"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHits, svc.hits)
			if tt.wantError != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}

func TestHandleReturnsAvailability(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, logger.NewNop())
	r := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/availability?date=2025-03-10", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.AvailabilityResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.True(t, body.Bookable)
	assert.Equal(t, "2025-03-10", svc.got.Format("2006-01-02"))
}
