package get_available_slots

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string          `json:"date"`
	BarbershopID  uuid.UUID       `json:"barbershopId"`
	BarberID      *uuid.UUID      `json:"barberId,omitempty"`
	TotalDuration int             `json:"totalDurationMinutes"`
	BufferMinutes int             `json:"bufferMinutes"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time           string    `json:"time"`
	Available      bool      `json:"available"`
	BarberID       uuid.UUID `json:"barberId"`
	ConflictReason string    `json:"conflictReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:           slot.Time.String(),
			Available:      slot.Available,
			BarberID:       slot.BarberID,
			ConflictReason: string(slot.ConflictReason),
		}
	}

	result := &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		BarbershopID:  resp.BarbershopID,
		TotalDuration: resp.TotalDuration,
		BufferMinutes: resp.BufferMinutes,
		Slots:         slots,
	}
	if resp.BarberID != uuid.Nil {
		barberID := resp.BarberID
		result.BarberID = &barberID
	}
	return result
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустой barberId означает, что барбер не выбран
func ToUseCaseRequest(barbershopID uuid.UUID, dateStr, barberIDStr, serviceIDsStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		BarbershopID: barbershopID,
		Date:         date,
	}

	if barberIDStr != "" {
		req.BarberID, err = handlers.ParseUUID(barberIDStr)
		if err != nil {
			return nil, err
		}
	}

	req.ServiceIDs, err = parseServiceIDs(serviceIDsStr)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// parseServiceIDs разбирает список вида "id1,id2"
func parseServiceIDs(s string) ([]uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := handlers.ParseUUID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
