package domain

import (
	"time"

	"github.com/google/uuid"
)

// BarbershopSettings tenant-level scheduling settings
type BarbershopSettings struct {
	BarbershopID  uuid.UUID
	BufferMinutes *int // NULL = буфер не настроен
	UpdatedAt     time.Time
}

// Buffer returns the buffer with the default applied
func (s *BarbershopSettings) Buffer() int {
	if s == nil {
		return DefaultBufferMinutes
	}
	return EffectiveBuffer(s.BufferMinutes)
}

// EffectiveBuffer resolves an optional buffer: nil or negative means no buffer
func EffectiveBuffer(buffer *int) int {
	if buffer == nil || *buffer < 0 {
		return DefaultBufferMinutes
	}
	return *buffer
}
