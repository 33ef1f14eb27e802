package blocked_time

import "errors"

var (
	// ErrBlockedTimeNotFound возвращается, когда блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("blocked_time.repository: blocked time not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blocked_time.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blocked_time.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blocked_time.repository: failed to scan row")
)
