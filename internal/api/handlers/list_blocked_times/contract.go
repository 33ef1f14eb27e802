package list_blocked_times

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/blocked_times/models"
)

type BlockedTimeService interface {
	ListByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) (*models.BlockedTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
