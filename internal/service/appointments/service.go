package appointments

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись видят только её клиент и барбер
func (s *Service) GetByID(ctx context.Context, barbershopID, id, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, userID)

	apt, err := s.getAppointment(ctx, "GetByID", barbershopID, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(apt, userID) {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(apt), nil
}

// GetBarberSchedule получает записи барбера на день
// По умолчанию отменённые записи и неявки не возвращаются
func (s *Service) GetBarberSchedule(ctx context.Context, req *models.GetBarberScheduleRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetBarberSchedule: barbershop=%s, barber=%s, date=%s, includeCancelled=%t, user=%s",
		req.BarbershopID, req.BarberID, req.Date.Format(domain.DateFormat), req.IncludeCancelled, req.UserID)

	if req.BarbershopID == uuid.Nil || req.BarberID == uuid.Nil || req.Date.IsZero() {
		s.logger.Warn("GetBarberSchedule: barbershop, barber and date are required")
		return nil, fmt.Errorf("%w: barbershop, barber and date are required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetBarberSchedule(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetBarberSchedule: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberSchedule: successfully fetched %d appointments for barber=%s", len(appointments), req.BarberID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetClientAppointments получает историю записей клиента в барбершопе
// Клиент видит только свою историю
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: barbershop=%s, client=%s, user=%s", req.BarbershopID, req.ClientID, req.UserID)

	if req.UserID != req.ClientID {
		s.logger.Warn("GetClientAppointments: user=%s is not client=%s", req.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.GetByClient(ctx, req.BarbershopID, req.ClientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%s", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Отменить может клиент или барбер, только из статусов pending и confirmed.
// Освободившееся время сразу видно в слотах: отменённые записи не учитываются при расчёте
func (s *Service) Cancel(ctx context.Context, barbershopID, id uuid.UUID, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, req.UserID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLen {
		s.logger.Warn("Cancel: cancellation reason is too long")
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLen)
	}

	apt, err := s.getAppointment(ctx, "Cancel", barbershopID, id)
	if err != nil {
		return err
	}

	if !canAccess(apt, req.UserID) {
		s.logger.Warn("Cancel: access denied for user=%s to cancel appointment id=%s", req.UserID, id)
		return ErrAccessDenied
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, apt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, barbershopID, id, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: appointment id=%s changed status before cancellation", id)
			return ErrCannotCancel
		}
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

func (s *Service) getAppointment(ctx context.Context, op string, barbershopID, id uuid.UUID) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, barbershopID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return apt, nil
}

// canAccess клиент записи или её барбер
func canAccess(apt *domain.Appointment, userID uuid.UUID) bool {
	return apt.ClientID == userID || apt.BarberID == userID
}
