package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AppointmentRepository источник занятых интервалов барбера
type AppointmentRepository interface {
	// GetBookedIntervals возвращает неотмененные записи барбера на дату
	GetBookedIntervals(ctx context.Context, barbershopID, barberID uuid.UUID, date time.Time) ([]domain.BookedInterval, error)
}

// BlockedTimeRepository источник ручных блокировок барбера
type BlockedTimeRepository interface {
	GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error)
}

// ServiceRepository каталог услуг барбершопа
type ServiceRepository interface {
	GetByIDs(ctx context.Context, barbershopID uuid.UUID, ids []uuid.UUID) ([]*domain.Service, error)
}

// SettingsProvider источник буфера между записями (nil - не настроен)
type SettingsProvider interface {
	GetBufferMinutes(ctx context.Context, barbershopID uuid.UUID) (*int, error)
}

// SlotMetrics счетчик исходов расчета слотов
type SlotMetrics interface {
	ObserveSlots(available, blocked, occupied int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
