package settings

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
)

var shopID = uuid.MustParse("0f6c6d1e-7a43-4c8b-9e55-1b2f3a4c5d6e")

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestGetByBarbershop(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT barbershop_id, buffer_minutes, updated_at FROM barbershop_settings WHERE barbershop_id = $1")).
		WithArgs(shopID).
		WillReturnRows(sqlmock.NewRows([]string{"barbershop_id", "buffer_minutes", "updated_at"}).
			AddRow(shopID.String(), int64(15), time.Now()))

	s, err := repo.GetByBarbershop(context.Background(), shopID)
	require.NoError(t, err)
	require.NotNil(t, s.BufferMinutes)
	assert.Equal(t, 15, s.Buffer())
}

func TestGetByBarbershop_NullBuffer(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM barbershop_settings").
		WillReturnRows(sqlmock.NewRows([]string{"barbershop_id", "buffer_minutes", "updated_at"}).
			AddRow(shopID.String(), nil, nil))

	s, err := repo.GetByBarbershop(context.Background(), shopID)
	require.NoError(t, err)
	assert.Nil(t, s.BufferMinutes)
	assert.Equal(t, 0, s.Buffer())
}

func TestGetByBarbershop_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM barbershop_settings").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByBarbershop(context.Background(), shopID)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpsertBuffer(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO barbershop_settings (barbershop_id,buffer_minutes) VALUES ($1,$2) ON CONFLICT (barbershop_id) DO UPDATE")).
		WithArgs(shopID, 20).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	s, err := repo.UpsertBuffer(context.Background(), shopID, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Buffer())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBuffer_Error(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO barbershop_settings").WillReturnError(errors.New("read-only transaction"))

	_, err := repo.UpsertBuffer(context.Background(), shopID, 20)
	assert.ErrorIs(t, err, ErrExecQuery)
}
