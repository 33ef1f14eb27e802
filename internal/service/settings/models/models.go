package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UpdateBufferRequest запрос на изменение буфера между записями
type UpdateBufferRequest struct {
	UserID        uuid.UUID `json:"-"`
	BarbershopID  uuid.UUID `json:"-"`
	BufferMinutes *int      `json:"bufferMinutes"`
}

// BufferResponse ответ с буфером барбершопа
type BufferResponse struct {
	BarbershopID  uuid.UUID `json:"barbershopId"`
	BufferMinutes int       `json:"bufferMinutes"`
	Configured    bool      `json:"configured"` // false - используется значение по умолчанию
}

// NewBufferResponse собирает ответ из необязательного значения буфера
func NewBufferResponse(barbershopID uuid.UUID, buffer *int) *BufferResponse {
	return &BufferResponse{
		BarbershopID:  barbershopID,
		BufferMinutes: domain.EffectiveBuffer(buffer),
		Configured:    buffer != nil,
	}
}
