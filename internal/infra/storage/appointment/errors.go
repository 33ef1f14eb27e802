package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotConflict возвращается, когда запись на это время уже существует (unique violation)
	ErrSlotConflict = errors.New("appointment.repository: slot already taken")

	// ErrSerializationFailure возвращается, когда Postgres прервал транзакцию из-за
	// конфликта сериализации (SQLSTATE 40001)
	ErrSerializationFailure = errors.New("appointment.repository: serialization failure")

	// ErrCannotCancel возвращается, когда запись уже не в статусе pending/confirmed
	ErrCannotCancel = errors.New("appointment.repository: appointment cannot be cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
