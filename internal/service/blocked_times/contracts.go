package blocked_times

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, barbershopID, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
