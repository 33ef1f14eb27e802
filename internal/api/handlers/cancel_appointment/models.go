package cancel_appointment

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID uuid.UUID) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
