package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID             uuid.UUID `json:"-"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
}

// GetBarberScheduleRequest запрос на получение записей барбера на день
type GetBarberScheduleRequest struct {
	UserID           uuid.UUID
	BarbershopID     uuid.UUID
	BarberID         uuid.UUID
	Date             time.Time
	IncludeCancelled bool // Включить отменённые и неявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberScheduleRequest) ToDomainFilter() domain.BarberScheduleFilter {
	return domain.BarberScheduleFilter{
		BarbershopID:     r.BarbershopID,
		BarberID:         r.BarberID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// GetClientAppointmentsRequest запрос на получение истории записей клиента
type GetClientAppointmentsRequest struct {
	UserID       uuid.UUID
	BarbershopID uuid.UUID
	ClientID     uuid.UUID
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	BarbershopID    uuid.UUID  `json:"barbershopId"`
	BarberID        uuid.UUID  `json:"barberId"`
	ClientID        uuid.UUID  `json:"clientId"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	AppointmentDate string     `json:"appointmentDate"` // "2025-06-10"
	StartTime       string     `json:"startTime"`       // "10:00"
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`

	// Денормализованные данные
	ServiceName  *string  `json:"serviceName,omitempty"`
	ServicePrice *float64 `json:"servicePrice,omitempty"`
	Notes        *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		BarbershopID:       a.BarbershopID,
		BarberID:           a.BarberID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    domain.DefaultServiceDurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.DurationMinutes != nil {
		resp.DurationMinutes = *a.DurationMinutes
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, apt := range appointments {
		if aptResp := FromDomainAppointment(apt); aptResp != nil {
			resp.Appointments = append(resp.Appointments, *aptResp)
		}
	}

	return resp
}
