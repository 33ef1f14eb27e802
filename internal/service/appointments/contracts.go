package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, barbershopID, id uuid.UUID) (*domain.Appointment, error)
	GetBarberSchedule(ctx context.Context, filter domain.BarberScheduleFilter) ([]*domain.Appointment, error)
	GetByClient(ctx context.Context, barbershopID, clientID uuid.UUID) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, barbershopID, id uuid.UUID, reason *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
