package get_buffer

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

type SettingsService interface {
	GetBuffer(ctx context.Context, barbershopID uuid.UUID) (*models.BufferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
