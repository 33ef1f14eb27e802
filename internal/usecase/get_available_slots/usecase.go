package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UseCase use case для получения слотов барбера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedTimeRepository
	serviceRepo     ServiceRepository
	settings        SettingsProvider
	hours           domain.BusinessHours
	location        *time.Location
	metrics         SlotMetrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedTimeRepository,
	serviceRepo ServiceRepository,
	settings SettingsProvider,
	hours domain.BusinessHours,
	location *time.Location,
	metrics SlotMetrics,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		serviceRepo:     serviceRepo,
		settings:        settings,
		hours:           hours.WithDefaults(),
		location:        location,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute пересчитывает слоты для барбера, даты и выбранных услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, barbershop=%s, barber=%s, date=%s, services=%d",
		req.UserID, req.BarbershopID, req.BarberID, req.Date.Format(domain.DateFormat), len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	response := &Response{
		Date:         date,
		BarbershopID: req.BarbershopID,
		BarberID:     req.BarberID,
		Slots:        []domain.TimeSlot{},
	}

	// 2. Барбер не выбран - считать нечего
	if req.BarberID == uuid.Nil {
		uc.logger.Info("GetAvailableSlots: barber is not selected, returning empty slots")
		return response, nil
	}

	// 3. Суммарная длительность выбранных услуг
	totalDuration, err := uc.totalDuration(ctx, req.BarbershopID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 4. Буфер барбершопа
	buffer, err := uc.settings.GetBufferMinutes(ctx, req.BarbershopID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get buffer for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get buffer: %v", ErrInternal, err)
	}

	// 5. Занятые интервалы на дату
	booked, err := uc.appointmentRepo.GetBookedIntervals(ctx, req.BarbershopID, req.BarberID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
	}

	// 6. Ручные блокировки барбера
	blocks, err := uc.blockedRepo.GetByBarber(ctx, req.BarbershopID, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	blocked := make([]domain.BlockedInterval, len(blocks))
	for i, b := range blocks {
		blocked[i] = b.Interval()
	}

	// 7. Расчет
	slots := availability.ComputeSlots(availability.Input{
		Date:          date,
		BarberID:      req.BarberID,
		Hours:         uc.hours,
		TotalDuration: totalDuration,
		Booked:        booked,
		Blocked:       blocked,
		BufferMinutes: buffer,
	})

	summary := availability.Summarize(slots)
	uc.metrics.ObserveSlots(summary.Available, summary.Blocked, summary.Occupied)

	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s: %d available, %d blocked, %d occupied",
		req.BarberID, date.Format(domain.DateFormat), summary.Available, summary.Blocked, summary.Occupied)

	response.TotalDuration = totalDuration
	response.BufferMinutes = domain.EffectiveBuffer(buffer)
	response.Slots = slots

	return response, nil
}

// totalDuration загружает выбранные услуги и суммирует их длительность
func (uc *UseCase) totalDuration(ctx context.Context, barbershopID uuid.UUID, serviceIDs []uuid.UUID) (int, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, barbershopID, serviceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return 0, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	selected, err := validateServices(serviceIDs, services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return 0, err
	}

	return domain.TotalDuration(selected), nil
}
