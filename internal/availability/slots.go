package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Input входные данные для расчета слотов одного барбера на один день
type Input struct {
	Date          time.Time // время суток игнорируется, часовой пояс берется из Date
	BarberID      uuid.UUID // uuid.Nil - барбер не выбран
	Hours         domain.BusinessHours
	TotalDuration int // суммарная длительность выбранных услуг в минутах
	Booked        []domain.BookedInterval
	Blocked       []domain.BlockedInterval
	BufferMinutes *int // nil - буфер не настроен
}

// ComputeSlots строит сетку слотов рабочего дня и помечает каждый как свободный или занятый
//
// Порядок проверок для каждого слота:
// 1. Ручная блокировка (blockStart <= slotStart < blockEnd) - причина "blocked", проверка записей пропускается
// 2. Пересечение с существующей записью с учетом буфера - причина "occupied"
// 3. Иначе слот свободен
//
// Функция чистая: не делает I/O, не хранит состояние, для одинаковых входных данных
// возвращает одинаковый результат
func ComputeSlots(in Input) []domain.TimeSlot {
	if in.BarberID == uuid.Nil {
		return []domain.TimeSlot{}
	}

	hours := in.Hours.WithDefaults()
	count := hours.SlotCount()
	buffer := domain.EffectiveBuffer(in.BufferMinutes)

	slots := make([]domain.TimeSlot, 0, count)
	startMinutes := hours.StartHour * 60

	for i := 0; i < count; i++ {
		slotMinutes := startMinutes + i*hours.SlotStepMinutes
		slotTime, err := types.NewTimeStringFromMinutes(slotMinutes)
		if err != nil {
			// Сетка вышла за пределы суток (EndHour > 24) - дальше слотов нет
			break
		}

		slot := domain.TimeSlot{
			Time:      slotTime,
			Available: true,
			BarberID:  in.BarberID,
		}

		switch {
		case isBlocked(slotTime.On(in.Date), in.Blocked):
			slot.Available = false
			slot.ConflictReason = domain.ConflictBlocked
		case isOccupied(slotMinutes, in.TotalDuration, buffer, in.Booked):
			slot.Available = false
			slot.ConflictReason = domain.ConflictOccupied
		}

		slots = append(slots, slot)
	}

	return slots
}

// FindSlot ищет слот с указанным временем начала
func FindSlot(slots []domain.TimeSlot, start types.TimeString) (domain.TimeSlot, bool) {
	for _, s := range slots {
		if s.Time == start {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}

// isBlocked проверяет попадание начала слота в ручную блокировку
// Блокировки заданы абсолютным временем и могут захватывать несколько дней
func isBlocked(slotStart time.Time, blocked []domain.BlockedInterval) bool {
	for _, b := range blocked {
		if b.Contains(slotStart) {
			return true
		}
	}
	return false
}

// isOccupied проверяет пересечение будущей записи [slotStart, slotStart+duration)
// с окном каждой существующей записи [aptStart, aptStart+duration+buffer)
//
// Неравенства строгие: слот, начинающийся ровно в aptEnd, свободен
// При нулевой длительности (услуги еще не выбраны) пересечений нет
func isOccupied(slotStart, totalDuration, buffer int, booked []domain.BookedInterval) bool {
	if totalDuration <= 0 {
		return false
	}

	slotEnd := slotStart + totalDuration

	for _, apt := range booked {
		aptStart := apt.StartTime.Minutes()
		if aptStart < 0 {
			continue
		}
		aptEnd := aptStart + apt.Duration() + buffer

		if slotStart < aptEnd && slotEnd > aptStart {
			return true
		}
	}

	return false
}

// Summary количество слотов по исходам
type Summary struct {
	Available int
	Blocked   int
	Occupied  int
}

// Summarize считает слоты по исходам (для логов и метрик)
func Summarize(slots []domain.TimeSlot) Summary {
	var s Summary
	for _, slot := range slots {
		switch slot.ConflictReason {
		case domain.ConflictBlocked:
			s.Blocked++
		case domain.ConflictOccupied:
			s.Occupied++
		default:
			s.Available++
		}
	}
	return s
}
