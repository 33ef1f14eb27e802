package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarbershopID == uuid.Nil {
		return fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}

	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per appointment", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	seen := make(map[uuid.UUID]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: empty service id", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate service id %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingTime проверяет, что запись не в прошлом
func validateBookingTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// Для сегодняшней даты время начала должно быть позже текущего
	if isSameDay(date, now) && !startTime.IsAfter(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s", ErrTooLateToBook, startTime)
	}

	return nil
}

// orderServices возвращает услуги в порядке запроса, проверяя что все найдены и активны
func orderServices(requested []uuid.UUID, found []*domain.Service) ([]*domain.Service, error) {
	byID := make(map[uuid.UUID]*domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	ordered := make([]*domain.Service, 0, len(requested))
	for _, id := range requested {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		if !s.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrServiceInactive, id)
		}
		ordered = append(ordered, s)
	}

	return ordered, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
