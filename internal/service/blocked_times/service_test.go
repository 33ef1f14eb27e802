package blocked_times

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	blockedTimeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/blocked_time"
	"github.com/m04kA/SMC-BarberService/internal/service/blocked_times/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type stubRepo struct {
	created   *domain.BlockedTime
	blocks    []*domain.BlockedTime
	err       error
	deleteErr error
}

func (r *stubRepo) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	if r.err != nil {
		return nil, r.err
	}
	block.ID = uuid.New()
	r.created = block
	return block, nil
}

func (r *stubRepo) GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error) {
	return r.blocks, r.err
}

func (r *stubRepo) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	return r.deleteErr
}

var (
	shopID   = uuid.MustParse("0f6c6d1e-7a43-4c8b-9e55-1b2f3a4c5d6e")
	barberID = uuid.MustParse("3a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	lunch    = time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
)

func createRequest() *models.CreateBlockedTimeRequest {
	return &models.CreateBlockedTimeRequest{
		UserID:       barberID,
		BarbershopID: shopID,
		BarberID:     barberID,
		StartAt:      lunch,
		EndAt:        lunch.Add(time.Hour),
		Reason:       ptr.Ptr("обед"),
	}
}

func TestCreate(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, lunch, repo.created.StartAt)
	assert.Equal(t, "обед", *resp.Reason)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, logger.NewNop())

	reversed := createRequest()
	reversed.EndAt = reversed.StartAt
	_, err := svc.Create(context.Background(), reversed)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	longReason := createRequest()
	longReason.Reason = ptr.Ptr(strings.Repeat("a", domain.MaxBlockReasonLength+1))
	_, err = svc.Create(context.Background(), longReason)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noBarber := createRequest()
	noBarber.BarberID = uuid.Nil
	_, err = svc.Create(context.Background(), noBarber)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_RepositoryError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("db down")}, logger.NewNop())

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListByBarber(t *testing.T) {
	repo := &stubRepo{blocks: []*domain.BlockedTime{{ID: uuid.New(), StartAt: lunch, EndAt: lunch.Add(time.Hour)}}}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListByBarber(context.Background(), shopID, barberID)
	require.NoError(t, err)
	assert.Len(t, resp.BlockedTimes, 1)

	repo.blocks = nil
	resp, err = svc.ListByBarber(context.Background(), shopID, barberID)
	require.NoError(t, err)
	assert.NotNil(t, resp.BlockedTimes)
}

func TestDelete(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, logger.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), shopID, uuid.New()))

	repo.deleteErr = fmt.Errorf("%w: Delete", blockedTimeRepo.ErrBlockedTimeNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), shopID, uuid.New()), ErrBlockedTimeNotFound)

	repo.deleteErr = errors.New("timeout")
	assert.ErrorIs(t, svc.Delete(context.Background(), shopID, uuid.New()), ErrInternal)
}
