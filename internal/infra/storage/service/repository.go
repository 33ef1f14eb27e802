package service

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг барбершопа (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs возвращает найденные услуги барбершопа
// Отсутствующие ID просто не попадают в результат, проверка остается за вызывающим
func (r *Repository) GetByIDs(ctx context.Context, barbershopID uuid.UUID, ids []uuid.UUID) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "barbershop_id", "name", "duration_minutes", "price", "is_active").
		From("services").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.BarbershopID, &s.Name, &s.DurationMinutes, &s.Price, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
