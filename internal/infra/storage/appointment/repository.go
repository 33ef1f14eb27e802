package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

// Колонки записи; duration_minutes берется из каталога услуг через LEFT JOIN
var appointmentColumns = []string{
	"a.id",
	"a.barbershop_id",
	"a.barber_id",
	"a.client_id",
	"a.service_id",
	"a.appointment_date",
	"a.start_time",
	"a.status",
	"a.service_name",
	"a.service_price",
	"s.duration_minutes",
	"a.notes",
	"a.cancellation_reason",
	"a.cancelled_at",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями к барберам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"barbershop_id",
			"barber_id",
			"client_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"service_name",
			"service_price",
			"notes",
		).
		Values(
			apt.BarbershopID,
			apt.BarberID,
			apt.ClientID,
			apt.ServiceID,
			apt.AppointmentDate,
			apt.StartTime,
			apt.Status,
			apt.ServiceName,
			apt.ServicePrice,
			apt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.ID, &createdAt, &updatedAt)
	if err != nil {
		switch pqCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotConflict, err)
		case pgSerializationFailure:
			return nil, fmt.Errorf("%w: Create: %v", ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID в рамках барбершопа
func (r *Repository) GetByID(ctx context.Context, barbershopID, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id, "a.barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// GetBookedIntervals возвращает занятые интервалы барбера на дату (без отмененных записей)
// Внутри транзакции строки блокируются FOR UPDATE, чтобы параллельное бронирование ждало
func (r *Repository) GetBookedIntervals(ctx context.Context, barbershopID, barberID uuid.UUID, date time.Time) ([]domain.BookedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("a.start_time", "s.duration_minutes").
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{
			"a.barbershop_id":    barbershopID,
			"a.barber_id":        barberID,
			"a.appointment_date": date.Format(domain.DateFormat),
		}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)}).
		OrderBy("a.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pqCode(err) == pgSerializationFailure {
			return nil, fmt.Errorf("%w: GetBookedIntervals: %v", ErrSerializationFailure, err)
		}
		return nil, fmt.Errorf("%w: GetBookedIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.BookedInterval, 0)
	for rows.Next() {
		var (
			start    types.TimeString
			duration sql.NullInt64
		)
		if err := rows.Scan(&start, &duration); err != nil {
			return nil, fmt.Errorf("%w: GetBookedIntervals - scan row: %v", ErrScanRow, err)
		}

		interval := domain.BookedInterval{StartTime: start}
		if duration.Valid {
			d := int(duration.Int64)
			interval.DurationMinutes = &d
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// GetBarberSchedule получает записи барбера на день, отсортированные по времени
// Без IncludeCancelled исключает отмененные и неявки
func (r *Repository) GetBarberSchedule(ctx context.Context, filter domain.BarberScheduleFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().
		Where(squirrel.Eq{
			"a.barbershop_id":    filter.BarbershopID,
			"a.barber_id":        filter.BarberID,
			"a.appointment_date": filter.Date.Format(domain.DateFormat),
		}).
		OrderBy("a.start_time ASC")

	if !filter.IncludeCancelled {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": inactive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByClient получает историю записей клиента в барбершопе (сначала новые)
func (r *Repository) GetByClient(ctx context.Context, barbershopID, clientID uuid.UUID) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.barbershop_id": barbershopID, "a.client_id": clientID}).
		OrderBy("a.appointment_date DESC", "a.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Cancel отменяет запись с указанием причины
// Обновляются только записи в статусе pending/confirmed; если строка не изменилась,
// возвращается ErrCannotCancel (запись отсутствует или ее статус уже сменился)
func (r *Repository) Cancel(ctx context.Context, barbershopID, id uuid.UUID, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "barbershop_id": barbershopID}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// pqCode возвращает SQLSTATE ошибки Postgres или пустую строку
func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		apt                  domain.Appointment
		duration             sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&apt.ID,
		&apt.BarbershopID,
		&apt.BarberID,
		&apt.ClientID,
		&apt.ServiceID,
		&apt.AppointmentDate,
		&apt.StartTime,
		&apt.Status,
		&apt.ServiceName,
		&apt.ServicePrice,
		&duration,
		&apt.Notes,
		&apt.CancellationReason,
		&apt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := int(duration.Int64)
		apt.DurationMinutes = &d
	}
	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
