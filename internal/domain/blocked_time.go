package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlockedTime is a persisted manual block (vacation, break, day off)
type BlockedTime struct {
	ID           uuid.UUID
	BarbershopID uuid.UUID
	BarberID     uuid.UUID
	StartAt      time.Time
	EndAt        time.Time
	Reason       *string
	CreatedAt    time.Time
}

// Interval returns the block as an interval for slot calculation
func (b *BlockedTime) Interval() BlockedInterval {
	return BlockedInterval{Start: b.StartAt, End: b.EndAt}
}

// IsValid returns true if the block has a positive length
func (b *BlockedTime) IsValid() bool {
	return b.EndAt.After(b.StartAt)
}
