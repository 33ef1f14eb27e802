package list_barber_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	barbershopID uuid.UUID,
	barberID uuid.UUID,
	userID uuid.UUID,
	dateStr string,
	includeCancelledStr string,
) (*models.GetBarberScheduleRequest, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	req := &models.GetBarberScheduleRequest{
		UserID:       userID,
		BarbershopID: barbershopID,
		BarberID:     barberID,
		Date:         date,
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
