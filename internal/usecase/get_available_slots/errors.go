package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в барбершопе
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("get_available_slots: service is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
