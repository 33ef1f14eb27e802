package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "from postgres TIME", input: "18:00:00", want: "18:00"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("12:00").IsAfter("11:59"))
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, -1, TimeString("").Minutes())
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 3, 14, 22, 15, 0, 0, loc)

	got := TimeString("11:30").On(date)

	assert.Equal(t, time.Date(2025, 3, 14, 11, 30, 0, 0, loc), got)
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("08:15").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:15", v)
}
