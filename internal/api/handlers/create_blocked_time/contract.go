package create_blocked_time

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/blocked_times/models"
)

type BlockedTimeService interface {
	Create(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
