package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Appointment)
	return a, args.Error(1)
}

func (m *mockRepo) GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]domain.Appointment)
	return list, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// inlineTx выполняет функцию без настоящей транзакции
type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *mockRepo) *Service {
	return NewService(repo, inlineTx{}, logger.NewNop())
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		confirm bool
		wantErr error
	}{
		{name: "confirm pending", from: domain.AppointmentPending, confirm: true},
		{name: "confirm confirmed", from: domain.AppointmentConfirmed, confirm: true, wantErr: ErrInvalidTransition},
		{name: "confirm cancelled", from: domain.AppointmentCancelled, confirm: true, wantErr: ErrInvalidTransition},
		{name: "cancel pending", from: domain.AppointmentPending},
		{name: "cancel confirmed", from: domain.AppointmentConfirmed},
		{name: "cancel cancelled", from: domain.AppointmentCancelled, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			target := domain.AppointmentCancelled
			if tt.confirm {
				target = domain.AppointmentConfirmed
			}

			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, id).Return(&domain.Appointment{
				ID:              id,
				AppointmentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Status:          tt.from,
			}, nil)
			if tt.wantErr == nil {
				repo.On("UpdateStatus", mock.Anything, id, target).Return(nil)
			}

			svc := newService(repo)
			var (
				resp *models.AppointmentResponse
				err  error
			)
			if tt.confirm {
				resp, err = svc.Confirm(context.Background(), id)
			} else {
				resp, err = svc.Cancel(context.Background(), id)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(target), resp.Status)
			assert.Equal(t, "2025-03-10", resp.AppointmentDate)
			repo.AssertExpectations(t)
		})
	}
}

func TestConfirmNotFound(t *testing.T) {
	id := uuid.New()
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, id).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	_, err := newService(repo).Confirm(context.Background(), id)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelStorageFailureIsInternal(t *testing.T) {
	id := uuid.New()
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, id).Return(&domain.Appointment{ID: id, Status: domain.AppointmentPending}, nil)
	repo.On("UpdateStatus", mock.Anything, id, domain.AppointmentCancelled).Return(errors.New("deadlock detected"))

	_, err := newService(repo).Cancel(context.Background(), id)

	assert.ErrorIs(t, err, ErrInternal)
}

// commitConflictTx выполняет функцию и отклоняет коммит с serialization_failure
type commitConflictTx struct{}

func (commitConflictTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return &pq.Error{Code: "40001"}
}

func TestConcurrentStatusChangeIsConflict(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		id := uuid.New()
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, id).Return(&domain.Appointment{ID: id, Status: domain.AppointmentPending}, nil)
		repo.On("UpdateStatus", mock.Anything, id, domain.AppointmentConfirmed).
			Return(fmt.Errorf("%w: UpdateStatus - execute update: %v", txmanager.ErrSerialization, &pq.Error{Code: "40001"}))

		_, err := newService(repo).Confirm(context.Background(), id)

		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.NotErrorIs(t, err, ErrInternal)
	})

	t.Run("commit", func(t *testing.T) {
		id := uuid.New()
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, id).Return(&domain.Appointment{ID: id, Status: domain.AppointmentConfirmed}, nil)
		repo.On("UpdateStatus", mock.Anything, id, domain.AppointmentCancelled).Return(nil)

		_, err := NewService(repo, commitConflictTx{}, logger.NewNop()).Cancel(context.Background(), id)

		assert.ErrorIs(t, err, ErrConcurrentUpdate)
	})
}

func TestListRejectsInvertedRange(t *testing.T) {
	from := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := newService(&mockRepo{}).List(context.Background(), &models.ListRequest{StartDate: &from, EndDate: &to})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestListPassesFilter(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	status := domain.AppointmentPending
	filter := domain.AppointmentsFilter{StartDate: &from, Status: &status}

	repo := &mockRepo{}
	repo.On("GetByFilter", mock.Anything, filter).Return([]domain.Appointment{
		{ID: uuid.New(), CustomerName: "Anna", AppointmentDate: from, Status: status},
	}, nil)

	resp, err := newService(repo).List(context.Background(), &models.ListRequest{StartDate: &from, Status: &status})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Anna", resp.Appointments[0].CustomerName)
	repo.AssertExpectations(t)
}
