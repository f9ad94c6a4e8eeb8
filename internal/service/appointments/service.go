package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// List возвращает записи за период с фильтром по статусу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	if req == nil {
		req = &models.ListRequest{}
	}
	s.logger.Info("List: from=%v, to=%v, status=%v, includeCancelled=%v",
		req.StartDate, req.EndDate, req.Status, req.IncludeCancelled)

	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		s.logger.Warn("List: start date is after end date")
		return nil, ErrInvalidTimeRange
	}

	appointments, err := s.appointmentRepo.GetByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Confirm переводит запись из pending в confirmed
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	return s.transition(ctx, "Confirm", id, domain.AppointmentConfirmed, (*domain.Appointment).CanBeConfirmed)
}

// Cancel отменяет ожидающую или подтверждённую запись
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	return s.transition(ctx, "Cancel", id, domain.AppointmentCancelled, (*domain.Appointment).CanBeCancelled)
}

// transition проверяет и применяет смену статуса в одной транзакции
func (s *Service) transition(
	ctx context.Context,
	op string,
	id uuid.UUID,
	target domain.AppointmentStatus,
	allowed func(*domain.Appointment) bool,
) (*models.AppointmentResponse, error) {
	s.logger.Info("%s: appointment id=%s -> %s", op, id, target)

	if id == uuid.Nil {
		return nil, ErrInvalidInput
	}

	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			return fmt.Errorf("%w: %s - get appointment: %v", ErrInternal, op, err)
		}

		if !allowed(appointment) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, target)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, target); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
		}

		appointment.Status = target
		result = appointment
		return nil
	})
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			s.logger.Warn("%s: appointment id=%s changed concurrently: %v", op, id, err)
			return nil, ErrConcurrentUpdate
		}

		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			s.logger.Warn("%s: appointment id=%s not found", op, id)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: %v", op, err)
		default:
			s.logger.Error("%s: failed for appointment id=%s: %v", op, id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
			}
		}
		return nil, err
	}

	s.logger.Info("%s: appointment id=%s is now %s", op, id, target)
	return models.FromDomainAppointment(result), nil
}
