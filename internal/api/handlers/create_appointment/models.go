package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID        uuid.UUID   `json:"barberId"`
	AppointmentDate string      `json:"appointmentDate"` // "2025-06-10"
	StartTime       string      `json:"startTime"`       // "10:00"
	ServiceIDs      []uuid.UUID `json:"serviceIds"`
	Notes           *string     `json:"notes,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Appointments  []models.AppointmentResponse `json:"appointments"`
	StartTime     string                       `json:"startTime"`
	EndTime       string                       `json:"endTime"`
	TotalDuration int                          `json:"totalDurationMinutes"`
	TotalPrice    float64                      `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(barbershopID, clientID uuid.UUID) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BarbershopID: barbershopID,
		BarberID:     r.BarberID,
		ClientID:     clientID,
		Date:         date,
		StartTime:    startTime,
		ServiceIDs:   r.ServiceIDs,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Appointments:  models.FromDomainAppointmentList(resp.Appointments).Appointments,
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		TotalDuration: resp.TotalDuration,
		TotalPrice:    resp.TotalPrice,
	}
}
