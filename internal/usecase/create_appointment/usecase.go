package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

// maxBookingAttempts попытки транзакции бронирования при конфликте сериализации
const maxBookingAttempts = 2

// UseCase use case для создания записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedTimeRepository
	serviceRepo     ServiceRepository
	settings        SettingsProvider
	txManager       TransactionManager
	hours           domain.BusinessHours
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedTimeRepository,
	serviceRepo ServiceRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	hours domain.BusinessHours,
	location *time.Location,
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
		txManager:       txManager,
		hours:           hours.WithDefaults(),
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка слота и вставка выполняются в сериализуемой транзакции, чтобы два клиента не заняли одно время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, barbershop=%s, barber=%s, date=%s, time=%s, services=%d",
		req.ClientID, req.BarbershopID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	now := uc.timeProvider.Now().In(uc.location)

	// 2. Дата и время не в прошлом
	if err := validateBookingTime(date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
		return nil, err
	}

	// 3. Выбранные услуги
	found, err := uc.serviceRepo.GetByIDs(ctx, req.BarbershopID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services, err := orderServices(req.ServiceIDs, found)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	totalDuration := domain.TotalDuration(services)
	endTime, err := req.StartTime.AddMinutes(totalDuration)
	if err != nil {
		uc.logger.Warn("CreateAppointment: appointment does not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 4. Проверка слота и создание записей в сериализуемой транзакции
	// Конфликт сериализации означает, что параллельная запись заняла время: пересчитываем один раз
	var created []*domain.Appointment
	for attempt := 1; ; attempt++ {
		created, err = uc.book(ctx, req, date, services, totalDuration)
		if !isSerializationFailure(err) {
			break
		}
		if attempt == maxBookingAttempts {
			uc.logger.Warn("CreateAppointment: slot %s for barber=%s lost to a concurrent booking: %v",
				req.StartTime, req.BarberID, err)
			return nil, fmt.Errorf("%w: concurrent booking", ErrSlotOccupied)
		}
		uc.logger.Warn("CreateAppointment: serialization failure, retrying (attempt %d): %v", attempt, err)
	}
	if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err != nil {
		return nil, err
	}

	var totalPrice float64
	for _, s := range services {
		totalPrice += s.Price
	}

	uc.logger.Info("CreateAppointment: created %d appointment(s) for client=%s, barber=%s, %s-%s",
		len(created), req.ClientID, req.BarberID, req.StartTime, endTime)

	return &Response{
		Appointments:  created,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		TotalDuration: totalDuration,
		TotalPrice:    totalPrice,
	}, nil
}

// book пересчитывает сетку и создает записи внутри одной сериализуемой транзакции
func (uc *UseCase) book(
	ctx context.Context,
	req *Request,
	date time.Time,
	services []*domain.Service,
	totalDuration int,
) ([]*domain.Appointment, error) {
	var created []*domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		buffer, err := uc.settings.GetBufferMinutes(txCtx, req.BarbershopID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get buffer: %v", err)
			return fmt.Errorf("%w: failed to get buffer: %v", ErrInternal, err)
		}

		// 4.1. Записи дня с блокировкой строк
		booked, err := uc.appointmentRepo.GetBookedIntervals(txCtx, req.BarbershopID, req.BarberID, date)
		if isSerializationFailure(err) {
			return err
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked intervals: %v", err)
			return fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
		}

		blocks, err := uc.blockedRepo.GetByBarber(txCtx, req.BarbershopID, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		blocked := make([]domain.BlockedInterval, len(blocks))
		for i, b := range blocks {
			blocked[i] = b.Interval()
		}

		// 4.2. Тот же расчет, что видит клиент при выборе времени
		slots := availability.ComputeSlots(availability.Input{
			Date:          date,
			BarberID:      req.BarberID,
			Hours:         uc.hours,
			TotalDuration: totalDuration,
			Booked:        booked,
			Blocked:       blocked,
			BufferMinutes: buffer,
		})

		slot, ok := availability.FindSlot(slots, req.StartTime)
		if !ok {
			uc.logger.Warn("CreateAppointment: %s is not on the slot grid", req.StartTime)
			return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
		}

		switch slot.ConflictReason {
		case domain.ConflictBlocked:
			uc.logger.Warn("CreateAppointment: slot %s is blocked for barber=%s", req.StartTime, req.BarberID)
			return ErrSlotBlocked
		case domain.ConflictOccupied:
			uc.logger.Warn("CreateAppointment: slot %s is occupied for barber=%s", req.StartTime, req.BarberID)
			return ErrSlotOccupied
		}

		// 4.3. По записи на каждую услугу, подряд от StartTime
		start := req.StartTime
		created = make([]*domain.Appointment, 0, len(services))
		for _, service := range services {
			apt := &domain.Appointment{
				BarbershopID:    req.BarbershopID,
				BarberID:        req.BarberID,
				ClientID:        req.ClientID,
				ServiceID:       ptr.Ptr(service.ID),
				AppointmentDate: date,
				StartTime:       start,
				Status:          domain.StatusConfirmed,
				// Денормализация данных услуги
				ServiceName:     ptr.Ptr(service.Name),
				ServicePrice:    ptr.Ptr(service.Price),
				DurationMinutes: ptr.Ptr(service.DurationMinutes),
				Notes:           req.Notes,
			}

			saved, err := uc.appointmentRepo.Create(txCtx, apt)
			if err != nil {
				if errors.Is(err, appointmentRepo.ErrSlotConflict) {
					uc.logger.Warn("CreateAppointment: concurrent booking took %s: %v", start, err)
					return ErrSlotOccupied
				}
				if isSerializationFailure(err) {
					return err
				}
				uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}
			created = append(created, saved)

			start, err = start.AddMinutes(service.DurationMinutes)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
			}
		}

		return nil
	})

	return created, err
}

// isSerializationFailure Postgres отменил транзакцию из-за параллельной записи (SQLSTATE 40001)
func isSerializationFailure(err error) bool {
	return errors.Is(err, appointmentRepo.ErrSerializationFailure) ||
		errors.Is(err, txmanager.ErrSerializationFailure)
}
