package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Repository источник настроек (Postgres)
type Repository interface {
	GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.BarbershopSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
