// Package elapsed renders elapsed durations the way a stopwatch displays them.
package elapsed

import (
	"fmt"
	"time"
)

// Format renders seconds as MM:SS, or HH:MM:SS from one hour up.
// Negative input is clamped to zero.
func Format(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Seconds truncates d to whole seconds, clamping negative durations to zero
func Seconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// FormatDuration formats d with Format
func FormatDuration(d time.Duration) string {
	return Format(Seconds(d))
}

// Since formats the time elapsed between start and now
func Since(start, now time.Time) string {
	return FormatDuration(now.Sub(start))
}
