package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BarbershopID uuid.UUID
	BarberID     uuid.UUID
	ClientID     uuid.UUID
	Date         time.Time        // Дата записи (время суток игнорируется)
	StartTime    types.TimeString // Время начала первой услуги
	ServiceIDs   []uuid.UUID      // Услуги выполняются подряд в указанном порядке
	Notes        *string
}

// Response модель ответа: по одной записи на каждую услугу
type Response struct {
	Appointments  []*domain.Appointment
	StartTime     types.TimeString
	EndTime       types.TimeString
	TotalDuration int
	TotalPrice    float64
}
