package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек барбершопа
type SettingsRepository interface {
	UpsertBuffer(ctx context.Context, barbershopID uuid.UUID, bufferMinutes int) (*domain.BarbershopSettings, error)
}

// BufferCache кэш буфера между записями
type BufferCache interface {
	GetBufferMinutes(ctx context.Context, barbershopID uuid.UUID) (*int, error)
	Invalidate(ctx context.Context, barbershopID uuid.UUID)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
