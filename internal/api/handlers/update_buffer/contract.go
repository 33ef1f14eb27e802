package update_buffer

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

type SettingsService interface {
	UpdateBuffer(ctx context.Context, req *models.UpdateBufferRequest) (*models.BufferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
