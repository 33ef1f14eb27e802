package blocked_times

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	blockedTimeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/blocked_time"
	"github.com/m04kA/SMC-BarberService/internal/service/blocked_times/models"
)

// Service сервис ручных блокировок времени барбера
type Service struct {
	blockedRepo BlockedTimeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedTimeRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Create блокирует интервал [StartAt, EndAt) для барбера
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: barbershop=%s, barber=%s, %s - %s by user=%s",
		req.BarbershopID, req.BarberID, req.StartAt, req.EndAt, req.UserID)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed: %v", err)
		return nil, err
	}

	block, err := s.blockedRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error for barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: created blocked time id=%s for barber=%s", block.ID, req.BarberID)
	return models.FromDomainBlockedTime(block), nil
}

// ListByBarber возвращает все блокировки барбера по возрастанию начала
func (s *Service) ListByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) (*models.BlockedTimeListResponse, error) {
	s.logger.Info("ListBlockedTimes: barbershop=%s, barber=%s", barbershopID, barberID)

	blocks, err := s.blockedRepo.GetByBarber(ctx, barbershopID, barberID)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlockedTimes: fetched %d blocked times for barber=%s", len(blocks), barberID)
	return models.FromDomainBlockedTimeList(blocks), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	s.logger.Info("DeleteBlockedTime: barbershop=%s, id=%s", barbershopID, id)

	if err := s.blockedRepo.Delete(ctx, barbershopID, id); err != nil {
		if errors.Is(err, blockedTimeRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("DeleteBlockedTime: blocked time id=%s not found", id)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedTime: deleted blocked time id=%s", id)
	return nil
}

func validateCreate(req *models.CreateBlockedTimeRequest) error {
	if req.BarbershopID == uuid.Nil || req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barbershop and barber are required", ErrInvalidInput)
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}
	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidTimeRange)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}
	return nil
}
