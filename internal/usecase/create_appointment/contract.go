package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedIntervals внутри транзакции блокирует записи дня (FOR UPDATE)
	GetBookedIntervals(ctx context.Context, barbershopID, barberID uuid.UUID, date time.Time) ([]domain.BookedInterval, error)
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// BlockedTimeRepository интерфейс репозитория блокировок
type BlockedTimeRepository interface {
	GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, barbershopID uuid.UUID, ids []uuid.UUID) ([]*domain.Service, error)
}

// SettingsProvider источник буфера между записями
type SettingsProvider interface {
	GetBufferMinutes(ctx context.Context, barbershopID uuid.UUID) (*int, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
