package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewTransactionManager(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestDoSerializable_Commit(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		called = true
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	errSlot := errors.New("slot taken")
	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return errSlot
	})

	assert.ErrorIs(t, err, errSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFails(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := tm.DoReadOnly(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDo_NestedReusesOuterTx(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(inner context.Context) error {
			outer, _ := dbmetrics.TxFromContext(ctx)
			nested, _ := dbmetrics.TxFromContext(inner)
			assert.Same(t, outer, nested)
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_CommitSerializationFailure(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrSerializationFailure)
	assert.NotErrorIs(t, err, ErrCommitTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_CommitFails(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitTx)
}
