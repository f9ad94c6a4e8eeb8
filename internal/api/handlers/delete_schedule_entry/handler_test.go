package delete_schedule_entry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) DeleteEntry(context.Context, uuid.UUID) error { return s.err }

func TestDeleteEntry(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "deleted", id: uuid.NewString(), want: http.StatusNoContent},
		{name: "missing", id: uuid.NewString(), err: schedule.ErrEntryNotFound, want: http.StatusNotFound},
		{name: "day-off row", id: uuid.NewString(), err: schedule.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "bad id", id: "not-a-uuid", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/schedule/{entryId}", NewHandler(stubService{err: tt.err}, logger.NewNop()).Handle)
			w := httptest.NewRecorder()

			r := httptest.NewRequest(http.MethodDelete, "/schedule/"+tt.id, nil)
			router.ServeHTTP(w, r.WithContext(middleware.WithAdminID(r.Context(), uuid.New())))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestDeleteEntryRequiresAdmin(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/schedule/{entryId}", NewHandler(stubService{}, logger.NewNop()).Handle)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/schedule/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
