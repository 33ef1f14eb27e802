package blocked_times

import "errors"

var (
	// ErrBlockedTimeNotFound возвращается, когда блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("blocked time not found")

	// ErrInvalidTimeRange возвращается, если конец блокировки не позже начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
