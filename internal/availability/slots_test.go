package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var (
	testBarber = uuid.MustParse("7b0d1f9e-3c55-4a51-9d43-6f3c2f1e8a10")
	testDate   = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func at(hour, minute int) time.Time {
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(), hour, minute, 0, 0, time.UTC)
}

func slotByTime(t *testing.T, slots []domain.TimeSlot, hhmm string) domain.TimeSlot {
	t.Helper()
	slot, ok := FindSlot(slots, types.TimeString(hhmm))
	require.True(t, ok, "slot %s not found", hhmm)
	return slot
}

func TestComputeSlots_NoConflicts(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
	})

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("18:30"), slots[19].Time)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
		assert.Equal(t, domain.ConflictNone, s.ConflictReason)
		assert.Equal(t, testBarber, s.BarberID)
	}
}

func TestComputeSlots_SingleBookingWithBuffer(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked: []domain.BookedInterval{
			{StartTime: "10:00", DurationMinutes: ptr.Ptr(30)},
		},
		BufferMinutes: ptr.Ptr(15),
	})

	// Окно записи 10:00-10:45
	assert.True(t, slotByTime(t, slots, "09:30").Available)
	assert.Equal(t, domain.ConflictOccupied, slotByTime(t, slots, "10:00").ConflictReason)
	assert.Equal(t, domain.ConflictOccupied, slotByTime(t, slots, "10:30").ConflictReason)
	assert.True(t, slotByTime(t, slots, "11:00").Available)
}

func TestComputeSlots_BlockedWindow(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Blocked: []domain.BlockedInterval{
			{Start: at(11, 0), End: at(12, 0)},
		},
	})

	assert.True(t, slotByTime(t, slots, "10:30").Available)
	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "11:00").ConflictReason)
	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "11:30").ConflictReason)
	assert.True(t, slotByTime(t, slots, "12:00").Available)
}

func TestComputeSlots_NoBarber(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      uuid.Nil,
		TotalDuration: 30,
		Booked:        []domain.BookedInterval{{StartTime: "10:00"}},
	})

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlots_BlockedTakesPrecedence(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked:        []domain.BookedInterval{{StartTime: "14:00", DurationMinutes: ptr.Ptr(60)}},
		Blocked:       []domain.BlockedInterval{{Start: at(14, 0), End: at(14, 30)}},
	})

	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "14:00").ConflictReason)
	assert.Equal(t, domain.ConflictOccupied, slotByTime(t, slots, "14:30").ConflictReason)
}

func TestComputeSlots_AbuttingEndIsAvailable(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked:        []domain.BookedInterval{{StartTime: "09:00", DurationMinutes: ptr.Ptr(45)}},
		BufferMinutes: ptr.Ptr(15),
	})

	// aptEnd = 09:00 + 45 + 15 = 10:00
	assert.False(t, slotByTime(t, slots, "09:30").Available)
	assert.True(t, slotByTime(t, slots, "10:00").Available)
}

func TestComputeSlots_LongSelectionOverlapsLaterBooking(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 90,
		Booked:        []domain.BookedInterval{{StartTime: "12:00", DurationMinutes: ptr.Ptr(30)}},
	})

	// 10:30 + 90 = 12:00 - граничит, свободно
	assert.True(t, slotByTime(t, slots, "10:30").Available)
	assert.Equal(t, domain.ConflictOccupied, slotByTime(t, slots, "11:00").ConflictReason)
	assert.Equal(t, domain.ConflictOccupied, slotByTime(t, slots, "11:30").ConflictReason)
	assert.True(t, slotByTime(t, slots, "12:30").Available)
}

func TestComputeSlots_MissingDurationDefaultsTo30(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked:        []domain.BookedInterval{{StartTime: "15:00", DurationMinutes: nil}},
	})

	assert.False(t, slotByTime(t, slots, "15:00").Available)
	assert.True(t, slotByTime(t, slots, "15:30").Available)
}

func TestComputeSlots_ZeroDurationNeverOccupied(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 0,
		Booked:        []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: ptr.Ptr(60)}},
		Blocked:       []domain.BlockedInterval{{Start: at(16, 0), End: at(16, 30)}},
	})

	assert.True(t, slotByTime(t, slots, "10:00").Available)
	assert.True(t, slotByTime(t, slots, "10:30").Available)
	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "16:00").ConflictReason)
}

func TestComputeSlots_BlockSpanningMidnight(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Blocked: []domain.BlockedInterval{
			// Отпуск с вечера предыдущего дня до 10:00
			{Start: at(20, 0).AddDate(0, 0, -1), End: at(10, 0)},
			// Блокировка на другой день не влияет
			{Start: at(9, 0).AddDate(0, 0, 1), End: at(19, 0).AddDate(0, 0, 1)},
		},
	})

	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "09:00").ConflictReason)
	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "09:30").ConflictReason)
	assert.True(t, slotByTime(t, slots, "10:00").Available)
	assert.Equal(t, 18, Summarize(slots).Available)
}

func TestComputeSlots_RespectsDateLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)

	// 08:00 UTC = 11:00 UTC+3
	slots := ComputeSlots(Input{
		Date:          date,
		BarberID:      testBarber,
		TotalDuration: 30,
		Blocked:       []domain.BlockedInterval{{Start: at(8, 0), End: at(8, 30)}},
	})

	assert.Equal(t, domain.ConflictBlocked, slotByTime(t, slots, "11:00").ConflictReason)
	assert.True(t, slotByTime(t, slots, "11:30").Available)
}

func TestComputeSlots_CustomHours(t *testing.T) {
	slots := ComputeSlots(Input{
		Date:          testDate,
		BarberID:      testBarber,
		Hours:         domain.BusinessHours{StartHour: 10, EndHour: 14, SlotStepMinutes: 15},
		TotalDuration: 15,
	})

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("13:45"), slots[15].Time)
}

func TestComputeSlots_Completeness(t *testing.T) {
	booked := []domain.BookedInterval{
		{StartTime: "09:00", DurationMinutes: ptr.Ptr(120)},
		{StartTime: "13:00"},
		{StartTime: "17:30", DurationMinutes: ptr.Ptr(90)},
	}
	blocked := []domain.BlockedInterval{{Start: at(0, 0), End: at(23, 59)}}

	for _, in := range []Input{
		{Date: testDate, BarberID: testBarber, TotalDuration: 30},
		{Date: testDate, BarberID: testBarber, TotalDuration: 60, Booked: booked},
		{Date: testDate, BarberID: testBarber, TotalDuration: 60, Booked: booked, Blocked: blocked},
	} {
		assert.Len(t, ComputeSlots(in), domain.DefaultBusinessHours().SlotCount())
	}
}

func TestComputeSlots_Deterministic(t *testing.T) {
	in := Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 45,
		Booked: []domain.BookedInterval{
			{StartTime: "10:00", DurationMinutes: ptr.Ptr(30)},
			{StartTime: "15:15"},
		},
		Blocked:       []domain.BlockedInterval{{Start: at(13, 0), End: at(14, 0)}},
		BufferMinutes: ptr.Ptr(10),
	}

	first := ComputeSlots(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeSlots(in))
	}
}

func TestComputeSlots_BufferMonotonic(t *testing.T) {
	base := Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked: []domain.BookedInterval{
			{StartTime: "09:30", DurationMinutes: ptr.Ptr(30)},
			{StartTime: "12:00", DurationMinutes: ptr.Ptr(45)},
			{StartTime: "16:00"},
		},
	}

	prevAvailable := map[types.TimeString]bool{}
	for _, s := range ComputeSlots(base) {
		prevAvailable[s.Time] = s.Available
	}

	for buffer := 5; buffer <= 120; buffer += 5 {
		in := base
		in.BufferMinutes = ptr.Ptr(buffer)

		for _, s := range ComputeSlots(in) {
			if s.Available {
				assert.True(t, prevAvailable[s.Time], "buffer=%d made slot %s available", buffer, s.Time)
			}
			prevAvailable[s.Time] = s.Available
		}
	}
}

func TestComputeSlots_NegativeBufferTreatedAsZero(t *testing.T) {
	in := Input{
		Date:          testDate,
		BarberID:      testBarber,
		TotalDuration: 30,
		Booked:        []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: ptr.Ptr(30)}},
	}
	withoutBuffer := ComputeSlots(in)

	in.BufferMinutes = ptr.Ptr(-20)
	assert.Equal(t, withoutBuffer, ComputeSlots(in))
}

func TestSummarize(t *testing.T) {
	slots := []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", ConflictReason: domain.ConflictBlocked},
		{Time: "10:00", ConflictReason: domain.ConflictOccupied},
		{Time: "10:30", ConflictReason: domain.ConflictOccupied},
	}

	assert.Equal(t, Summary{Available: 1, Blocked: 1, Occupied: 2}, Summarize(slots))
}
