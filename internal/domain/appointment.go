package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment is a client's booking with a barber
type Appointment struct {
	ID              uuid.UUID
	BarbershopID    uuid.UUID
	BarberID        uuid.UUID
	ClientID        uuid.UUID
	ServiceID       *uuid.UUID // NULL, если услуга была удалена
	AppointmentDate time.Time
	StartTime       types.TimeString
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName     *string
	ServicePrice    *float64
	DurationMinutes *int // длительность услуги; NULL, если услуга удалена
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies the barber's time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval returns the booked interval used by slot calculation
func (a *Appointment) Interval() BookedInterval {
	return BookedInterval{
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
	}
}

// BarberScheduleFilter фильтр расписания барбера на день
type BarberScheduleFilter struct {
	BarbershopID     uuid.UUID
	BarberID         uuid.UUID
	Date             time.Time
	IncludeCancelled bool
}
