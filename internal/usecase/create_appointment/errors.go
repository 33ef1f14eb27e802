package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в барбершопе
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrTooLateToBook возвращается, когда время начала сегодня уже прошло
	ErrTooLateToBook = errors.New("create_appointment: start time has already passed")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот недоступен
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotBlocked слот попадает в ручную блокировку барбера
	ErrSlotBlocked = fmt.Errorf("%w: blocked", ErrSlotNotAvailable)

	// ErrSlotOccupied слот пересекается с существующей записью
	ErrSlotOccupied = fmt.Errorf("%w: occupied", ErrSlotNotAvailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
