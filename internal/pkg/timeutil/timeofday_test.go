package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "09:00", want: FromClock(9, 0, 0)},
		{input: "09:00:30", want: FromClock(9, 0, 30)},
		{input: "23:59:59", want: FromClock(23, 59, 59)},
		{input: "00:00", want: 0},
		{input: "24:00", wantErr: true},
		{input: "9am", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "09:05:00", FromClock(9, 5, 0).String())
	assert.Equal(t, "00:00:00", TimeOfDay(0).String())
	assert.Equal(t, "17:45:10", FromClock(17, 45, 10).String())
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	t.Parallel()

	start := FromClock(9, 0, 0)

	assert.Equal(t, FromClock(9, 15, 0), start.Add(15*time.Minute))
	assert.Equal(t, FromClock(8, 30, 0), start.Add(-30*time.Minute))
	assert.Equal(t, 7*time.Hour+55*time.Minute, FromClock(17, 5, 0).Sub(FromClock(9, 10, 0)))
	assert.Equal(t, -time.Hour, FromClock(8, 0, 0).Sub(FromClock(9, 0, 0)))
}

func TestTimeOfDay_ClampToDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TimeOfDay(0), FromClock(0, 10, 0).Add(-30*time.Minute).ClampToDay())
	assert.Equal(t, FromClock(23, 59, 59), FromClock(23, 50, 0).Add(time.Hour).ClampToDay())
	assert.Equal(t, FromClock(12, 0, 0), FromClock(12, 0, 0).ClampToDay())
}

func TestTimeOfDay_At(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	got := FromClock(9, 30, 0).At(date)
	assert.Equal(t, time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC), got)
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 14, 22, 15, 5, 0, time.UTC)
	assert.Equal(t, FromClock(22, 15, 5), FromTime(ts))
}
