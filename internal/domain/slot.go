package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// ConflictReason explains why a slot is unavailable
type ConflictReason string

const (
	ConflictNone     ConflictReason = ""
	ConflictBlocked  ConflictReason = "blocked"
	ConflictOccupied ConflictReason = "occupied"
)

// TimeSlot is a candidate appointment start for one barber on one day.
// Slots are values: the calculator returns a fresh slice on every call.
type TimeSlot struct {
	Time           types.TimeString
	Available      bool
	BarberID       uuid.UUID
	ConflictReason ConflictReason // empty when Available
}

// BookedInterval is an existing non-cancelled appointment on the day
type BookedInterval struct {
	StartTime       types.TimeString
	DurationMinutes *int // nil means the service reference is missing
}

// Duration returns the booked duration with the default applied
func (b BookedInterval) Duration() int {
	if b.DurationMinutes == nil {
		return DefaultServiceDurationMinutes
	}
	return *b.DurationMinutes
}

// BlockedInterval is a manual unavailability window in absolute time
type BlockedInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls into [Start, End)
func (b BlockedInterval) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// BusinessHours describes the slot grid of a working day
type BusinessHours struct {
	StartHour       int
	EndHour         int
	SlotStepMinutes int
}

// DefaultBusinessHours returns the 09:00-19:00 grid with a 30 minute step
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		SlotStepMinutes: DefaultSlotStepMinutes,
	}
}

// WithDefaults fills zero fields with defaults
func (h BusinessHours) WithDefaults() BusinessHours {
	if h.StartHour == 0 && h.EndHour == 0 {
		h.StartHour = DefaultStartHour
		h.EndHour = DefaultEndHour
	}
	if h.SlotStepMinutes <= 0 {
		h.SlotStepMinutes = DefaultSlotStepMinutes
	}
	return h
}

// SlotCount returns the number of grid steps in [StartHour, EndHour)
func (h BusinessHours) SlotCount() int {
	if h.EndHour <= h.StartHour || h.SlotStepMinutes <= 0 {
		return 0
	}
	return (h.EndHour - h.StartHour) * 60 / h.SlotStepMinutes
}
