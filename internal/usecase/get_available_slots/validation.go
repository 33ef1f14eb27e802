package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarbershopID == uuid.Nil {
		return fmt.Errorf("%w: barbershopID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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

	return nil
}

// validateServices проверяет, что все выбранные услуги найдены и активны,
// и возвращает только запрошенные услуги в порядке запроса
func validateServices(requested []uuid.UUID, found []*domain.Service) ([]*domain.Service, error) {
	byID := make(map[uuid.UUID]*domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	selected := make([]*domain.Service, 0, len(requested))
	for _, id := range requested {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		if !s.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrServiceInactive, id)
		}
		selected = append(selected, s)
	}

	return selected, nil
}
