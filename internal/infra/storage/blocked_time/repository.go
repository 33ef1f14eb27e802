package blocked_time

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

var blockedTimeColumns = []string{
	"id",
	"barbershop_id",
	"barber_id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий ручных блокировок времени барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barber_blocked_times").
		Columns("barbershop_id", "barber_id", "start_at", "end_at", "reason").
		Values(block.BarbershopID, block.BarberID, block.StartAt, block.EndAt, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByBarber возвращает все блокировки барбера, отсортированные по началу
// Фильтрация по дате выполняется при расчете слотов: блокировка может захватывать несколько дней
func (r *Repository) GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("barber_blocked_times").
		Where(squirrel.Eq{"barbershop_id": barbershopID, "barber_id": barberID}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		block, err := scanBlockedTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBarber - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetByID получает блокировку по ID в рамках барбершопа
func (r *Repository) GetByID(ctx context.Context, barbershopID, id uuid.UUID) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("barber_blocked_times").
		Where(squirrel.Eq{"id": id, "barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlockedTime(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked time: %v", ErrScanRow, err)
	}

	return block, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("barber_blocked_times").
		Where(squirrel.Eq{"id": id, "barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedTime(row rowScanner) (*domain.BlockedTime, error) {
	var (
		block     domain.BlockedTime
		createdAt sql.NullTime
	)

	err := row.Scan(
		&block.ID,
		&block.BarbershopID,
		&block.BarberID,
		&block.StartAt,
		&block.EndAt,
		&block.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	block.CreatedAt = createdAt.Time

	return &block, nil
}
