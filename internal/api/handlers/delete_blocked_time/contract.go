package delete_blocked_time

import (
	"context"

	"github.com/google/uuid"
)

type BlockedTimeService interface {
	Delete(ctx context.Context, barbershopID, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
