package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	UserID       uuid.UUID   // ID пользователя (для логирования, может быть пустым)
	BarbershopID uuid.UUID   // ID барбершопа
	BarberID     uuid.UUID   // ID барбера; uuid.Nil - барбер не выбран
	Date         time.Time   // Дата (время суток игнорируется)
	ServiceIDs   []uuid.UUID // Выбранные услуги, могут быть пустыми
}

// Response модель ответа со слотами дня
type Response struct {
	Date          time.Time
	BarbershopID  uuid.UUID
	BarberID      uuid.UUID
	TotalDuration int // суммарная длительность выбранных услуг
	BufferMinutes int
	Slots         []domain.TimeSlot
}
