package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

// Service сервис настроек барбершопа
type Service struct {
	settingsRepo SettingsRepository
	cache        BufferCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, cache BufferCache, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetBuffer возвращает буфер между записями
// Если буфер не настроен, возвращается значение по умолчанию
func (s *Service) GetBuffer(ctx context.Context, barbershopID uuid.UUID) (*models.BufferResponse, error) {
	s.logger.Info("GetBuffer: barbershop=%s", barbershopID)

	if barbershopID == uuid.Nil {
		return nil, fmt.Errorf("%w: barbershop is required", ErrInvalidInput)
	}

	buffer, err := s.cache.GetBufferMinutes(ctx, barbershopID)
	if err != nil {
		s.logger.Error("GetBuffer: failed to get buffer for barbershop=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: GetBuffer - %v", ErrInternal, err)
	}

	return models.NewBufferResponse(barbershopID, buffer), nil
}

// UpdateBuffer сохраняет буфер и сбрасывает кэш
func (s *Service) UpdateBuffer(ctx context.Context, req *models.UpdateBufferRequest) (*models.BufferResponse, error) {
	s.logger.Info("UpdateBuffer: barbershop=%s by user=%s", req.BarbershopID, req.UserID)

	if req.BarbershopID == uuid.Nil {
		return nil, fmt.Errorf("%w: barbershop is required", ErrInvalidInput)
	}
	if req.BufferMinutes == nil {
		s.logger.Warn("UpdateBuffer: bufferMinutes is required")
		return nil, fmt.Errorf("%w: bufferMinutes is required", ErrInvalidInput)
	}
	if *req.BufferMinutes < domain.MinBufferMinutes || *req.BufferMinutes > domain.MaxBufferMinutes {
		s.logger.Warn("UpdateBuffer: buffer %d is out of range", *req.BufferMinutes)
		return nil, fmt.Errorf("%w: must be between %d and %d", ErrInvalidBuffer, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	saved, err := s.settingsRepo.UpsertBuffer(ctx, req.BarbershopID, *req.BufferMinutes)
	if err != nil {
		s.logger.Error("UpdateBuffer: repository error for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: UpdateBuffer - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, req.BarbershopID)

	s.logger.Info("UpdateBuffer: barbershop=%s buffer set to %d", req.BarbershopID, *req.BufferMinutes)
	return models.NewBufferResponse(req.BarbershopID, saved.BufferMinutes), nil
}
