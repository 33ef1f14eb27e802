package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// CreateBlockedTimeRequest запрос на блокировку времени барбера
type CreateBlockedTimeRequest struct {
	UserID       uuid.UUID `json:"-"`
	BarbershopID uuid.UUID `json:"-"`
	BarberID     uuid.UUID `json:"-"`
	StartAt      time.Time `json:"startAt"` // RFC 3339
	EndAt        time.Time `json:"endAt"`
	Reason       *string   `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateBlockedTimeRequest) ToDomain() *domain.BlockedTime {
	return &domain.BlockedTime{
		BarbershopID: r.BarbershopID,
		BarberID:     r.BarberID,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		Reason:       r.Reason,
	}
}

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID           uuid.UUID `json:"id"`
	BarbershopID uuid.UUID `json:"barbershopId"`
	BarberID     uuid.UUID `json:"barberId"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Reason       *string   `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(b *domain.BlockedTime) *BlockedTimeResponse {
	if b == nil {
		return nil
	}
	return &BlockedTimeResponse{
		ID:           b.ID,
		BarbershopID: b.BarbershopID,
		BarberID:     b.BarberID,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blocks []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(blocks)),
	}
	for _, b := range blocks {
		if r := FromDomainBlockedTime(b); r != nil {
			resp.BlockedTimes = append(resp.BlockedTimes, *r)
		}
	}
	return resp
}
