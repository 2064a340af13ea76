package elapsed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{21, "00:21"},
		{60, "01:00"},
		{599, "09:59"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.seconds), "Format(%d)", tt.seconds)
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, int64(0), Seconds(999*time.Millisecond))
	assert.Equal(t, int64(21), Seconds(21*time.Second+900*time.Millisecond))
	assert.Equal(t, int64(0), Seconds(-3*time.Second), "negative durations clamp to zero")
}

func TestSince(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "00:21", Since(start, start.Add(21*time.Second)))
	assert.Equal(t, "01:01:01", Since(start, start.Add(time.Hour+time.Minute+time.Second)))
	assert.Equal(t, "00:00", Since(start, start.Add(-time.Minute)), "clock skew must not go negative")
}
