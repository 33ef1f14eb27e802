package domain

// Настройки сетки слотов по умолчанию
const (
	DefaultStartHour       = 9
	DefaultEndHour         = 19
	DefaultSlotStepMinutes = 30

	// DefaultServiceDurationMinutes подставляется, если у записи нет ссылки на услугу
	DefaultServiceDurationMinutes = 30

	// DefaultBufferMinutes используется, если у барбершопа не настроен буфер
	DefaultBufferMinutes = 0
)

// Business validation constants
const (
	MinBufferMinutes         = 0
	MaxBufferMinutes         = 240
	MaxNotesLength           = 500
	MaxCancellationReasonLen = 500
	MaxBlockReasonLength     = 200
	MaxServicesPerBooking    = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают время барбера
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
