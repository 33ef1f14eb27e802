package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type stubAppointments struct {
	booked   []domain.BookedInterval
	err      error
	lastDate time.Time
	calls    int
}

func (s *stubAppointments) GetBookedIntervals(ctx context.Context, barbershopID, barberID uuid.UUID, date time.Time) ([]domain.BookedInterval, error) {
	s.calls++
	s.lastDate = date
	return s.booked, s.err
}

type stubBlocked struct {
	blocks []*domain.BlockedTime
	err    error
}

func (s *stubBlocked) GetByBarber(ctx context.Context, barbershopID, barberID uuid.UUID) ([]*domain.BlockedTime, error) {
	return s.blocks, s.err
}

type stubServices struct {
	services []*domain.Service
	err      error
	// unfiltered - вернуть весь каталог, не фильтруя по ids
	unfiltered bool
}

func (s *stubServices) GetByIDs(ctx context.Context, barbershopID uuid.UUID, ids []uuid.UUID) ([]*domain.Service, error) {
	if s.err != nil || s.unfiltered {
		return s.services, s.err
	}

	result := make([]*domain.Service, 0, len(ids))
	for _, svc := range s.services {
		for _, id := range ids {
			if svc.ID == id {
				result = append(result, svc)
				break
			}
		}
	}
	return result, nil
}

type stubSettings struct {
	buffer *int
	err    error
}

func (s *stubSettings) GetBufferMinutes(ctx context.Context, barbershopID uuid.UUID) (*int, error) {
	return s.buffer, s.err
}

type stubMetrics struct {
	available, blocked, occupied int
}

func (s *stubMetrics) ObserveSlots(available, blocked, occupied int) {
	s.available, s.blocked, s.occupied = available, blocked, occupied
}

type fixture struct {
	appointments *stubAppointments
	blocked      *stubBlocked
	services     *stubServices
	settings     *stubSettings
	metrics      *stubMetrics
	uc           *UseCase
}

var (
	shopID   = uuid.MustParse("0f6c6d1e-7a43-4c8b-9e55-1b2f3a4c5d6e")
	barberID = uuid.MustParse("3a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	haircut  = &domain.Service{ID: uuid.MustParse("11111111-1111-4111-8111-111111111111"), Name: "Стрижка", DurationMinutes: 30, Price: 1500, IsActive: true}
	beard    = &domain.Service{ID: uuid.MustParse("22222222-2222-4222-8222-222222222222"), Name: "Борода", DurationMinutes: 30, Price: 800, IsActive: true}
)

func newFixture(loc *time.Location) *fixture {
	f := &fixture{
		appointments: &stubAppointments{},
		blocked:      &stubBlocked{},
		services:     &stubServices{services: []*domain.Service{haircut, beard}},
		settings:     &stubSettings{},
		metrics:      &stubMetrics{},
	}
	f.uc = NewUseCase(f.appointments, f.blocked, f.services, f.settings,
		domain.DefaultBusinessHours(), loc, f.metrics, logger.NewNop())
	return f
}

func request(serviceIDs ...uuid.UUID) *Request {
	return &Request{
		BarbershopID: shopID,
		BarberID:     barberID,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		ServiceIDs:   serviceIDs,
	}
}

func TestExecute_FullDayAvailable(t *testing.T) {
	f := newFixture(time.UTC)

	resp, err := f.uc.Execute(context.Background(), request(haircut.ID))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 20)
	assert.Equal(t, 30, resp.TotalDuration)
	assert.Equal(t, 0, resp.BufferMinutes)
	assert.Equal(t, 20, f.metrics.available)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestExecute_BookingBufferAndBlock(t *testing.T) {
	f := newFixture(time.UTC)
	f.settings.buffer = ptr.Ptr(15)
	f.appointments.booked = []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: ptr.Ptr(30)}}
	f.blocked.blocks = []*domain.BlockedTime{{
		StartAt: time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Execute(context.Background(), request(haircut.ID))
	require.NoError(t, err)

	reasons := map[string]domain.ConflictReason{}
	for _, s := range resp.Slots {
		reasons[s.Time.String()] = s.ConflictReason
	}

	assert.Equal(t, domain.ConflictNone, reasons["09:30"])
	assert.Equal(t, domain.ConflictOccupied, reasons["10:00"])
	assert.Equal(t, domain.ConflictOccupied, reasons["10:30"])
	assert.Equal(t, domain.ConflictBlocked, reasons["11:00"])
	assert.Equal(t, domain.ConflictBlocked, reasons["11:30"])
	assert.Equal(t, domain.ConflictNone, reasons["12:00"])

	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, 2, f.metrics.blocked)
	assert.Equal(t, 2, f.metrics.occupied)
	assert.Equal(t, 16, f.metrics.available)
}

func TestExecute_MultipleServicesSumDuration(t *testing.T) {
	f := newFixture(time.UTC)
	f.appointments.booked = []domain.BookedInterval{{StartTime: "12:00", DurationMinutes: ptr.Ptr(30)}}

	resp, err := f.uc.Execute(context.Background(), request(haircut.ID, beard.ID))
	require.NoError(t, err)
	assert.Equal(t, 60, resp.TotalDuration)

	// 11:00 + 60 = 12:00 граничит с записью, 11:30 пересекается
	assert.True(t, resp.Slots[4].Available)
	assert.Equal(t, "11:30", resp.Slots[5].Time.String())
	assert.False(t, resp.Slots[5].Available)
}

func TestExecute_DurationCountsOnlyRequestedServices(t *testing.T) {
	f := newFixture(time.UTC)
	f.services.unfiltered = true
	f.appointments.booked = []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: ptr.Ptr(30)}}

	resp, err := f.uc.Execute(context.Background(), request(haircut.ID))
	require.NoError(t, err)
	assert.Equal(t, 30, resp.TotalDuration)

	// 09:30 + 30 = 10:00 граничит с записью
	assert.Equal(t, "09:30", resp.Slots[1].Time.String())
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_NoBarberSkipsStore(t *testing.T) {
	f := newFixture(time.UTC)
	req := request(haircut.ID)
	req.BarberID = uuid.Nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, f.appointments.calls)
}

func TestExecute_NoServicesMeansNeverOccupied(t *testing.T) {
	f := newFixture(time.UTC)
	f.appointments.booked = []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: ptr.Ptr(120)}}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalDuration)
	assert.Equal(t, 20, f.metrics.available)
}

func TestExecute_DateAnchoredToLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	f := newFixture(loc)

	req := request()
	req.Date = time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), resp.Date)
	assert.Equal(t, resp.Date, f.appointments.lastDate)
}

func TestExecute_ServiceErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(time.UTC)
		f.services.services = []*domain.Service{haircut}

		_, err := f.uc.Execute(context.Background(), request(haircut.ID, beard.ID))
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture(time.UTC)
		inactive := *beard
		inactive.IsActive = false
		f.services.services = []*domain.Service{&inactive}

		_, err := f.uc.Execute(context.Background(), request(beard.ID))
		assert.ErrorIs(t, err, ErrServiceInactive)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(time.UTC)
		f.services.err = errors.New("db down")

		_, err := f.uc.Execute(context.Background(), request(beard.ID))
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_StoreFailures(t *testing.T) {
	f := newFixture(time.UTC)
	f.settings.err = errors.New("redis and db down")
	_, err := f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrInternal)

	f = newFixture(time.UTC)
	f.appointments.err = errors.New("timeout")
	_, err = f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrInternal)

	f = newFixture(time.UTC)
	f.blocked.err = errors.New("timeout")
	_, err = f.uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(time.UTC)

	noShop := request()
	noShop.BarbershopID = uuid.Nil
	_, err := f.uc.Execute(context.Background(), noShop)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noDate := request()
	noDate.Date = time.Time{}
	_, err = f.uc.Execute(context.Background(), noDate)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), request(haircut.ID, haircut.ID))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
