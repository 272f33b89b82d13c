package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	assert.NoError(t, err)
	return parsed
}

func TestHoursWorkedFor(t *testing.T) {
	tests := []struct {
		name         string
		clockIn      string
		clockOut     string
		breakMinutes int
		want         string
	}{
		{
			name:         "standard day with 45 minute break",
			clockIn:      "2026-03-02 08:00:00",
			clockOut:     "2026-03-02 16:30:00",
			breakMinutes: 45,
			want:         "7.75",
		},
		{
			name:         "one hour break",
			clockIn:      "2026-03-02 09:00:00",
			clockOut:     "2026-03-02 17:00:00",
			breakMinutes: 60,
			want:         "7",
		},
		{
			name:         "break longer than shift clamps to zero",
			clockIn:      "2026-03-02 09:00:00",
			clockOut:     "2026-03-02 09:30:00",
			breakMinutes: 60,
			want:         "0",
		},
		{
			name:         "sub-minute remainder is dropped before division",
			clockIn:      "2026-03-02 09:00:00",
			clockOut:     "2026-03-02 09:10:59",
			breakMinutes: 0,
			want:         "0.17",
		},
		{
			name:         "no break",
			clockIn:      "2026-03-02 08:15:00",
			clockOut:     "2026-03-02 12:35:00",
			breakMinutes: 0,
			want:         "4.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoursWorkedFor(mustTime(t, tt.clockIn), mustTime(t, tt.clockOut), tt.breakMinutes)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestIsClosed(t *testing.T) {
	in := mustTime(t, "2026-03-02 08:00:00")
	out := mustTime(t, "2026-03-02 16:00:00")

	assert.False(t, Attendance{}.IsClosed())
	assert.False(t, Attendance{ClockIn: &in}.IsClosed())
	assert.True(t, Attendance{ClockIn: &in, ClockOut: &out}.IsClosed())
}
