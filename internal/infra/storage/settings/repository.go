package settings

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

// Repository репозиторий настроек барбершопа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarbershop получает настройки барбершопа
func (r *Repository) GetByBarbershop(ctx context.Context, barbershopID uuid.UUID) (*domain.BarbershopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("barbershop_id", "buffer_minutes", "updated_at").
		From("barbershop_settings").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings  domain.BarbershopSettings
		buffer    sql.NullInt64
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(&settings.BarbershopID, &buffer, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarbershop - scan settings: %v", ErrScanRow, err)
	}

	if buffer.Valid {
		b := int(buffer.Int64)
		settings.BufferMinutes = &b
	}
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// UpsertBuffer создает или обновляет буфер между записями
func (r *Repository) UpsertBuffer(ctx context.Context, barbershopID uuid.UUID, bufferMinutes int) (*domain.BarbershopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbershop_settings").
		Columns("barbershop_id", "buffer_minutes").
		Values(barbershopID, bufferMinutes).
		Suffix("ON CONFLICT (barbershop_id) DO UPDATE SET buffer_minutes = EXCLUDED.buffer_minutes, updated_at = NOW() RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBuffer - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertBuffer - execute upsert: %v", ErrExecQuery, err)
	}

	return &domain.BarbershopSettings{
		BarbershopID:  barbershopID,
		BufferMinutes: &bufferMinutes,
		UpdatedAt:     updatedAt.Time,
	}, nil
}
