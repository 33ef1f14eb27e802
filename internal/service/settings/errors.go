package settings

import "errors"

var (
	// ErrInvalidBuffer возвращается, если буфер вне допустимого диапазона
	ErrInvalidBuffer = errors.New("invalid buffer minutes")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
