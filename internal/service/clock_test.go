package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
		{"11:30:00", 690},
	}
	for _, tc := range tests {
		got, err := parseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.minutes, got, tc.in)
	}
}

func TestParseClock_Rejects(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := parseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "09:30", formatClock(570))
	assert.Equal(t, "23:59", formatClock(1439))
}

func TestClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:15", "12:00", "18:45", "23:30"} {
		m, err := parseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatClock(m))
	}
}
