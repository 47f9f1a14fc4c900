package gate

import (
	"math"
	"time"
)

const (
	// DuplicateWindowHours: a repeat scan within this window of an open
	// session's gate-in is a no-op, not a gate-out.
	DuplicateWindowHours = 1.0

	// OvertimeThresholdHours: sessions at or above this elapsed duration are
	// flagged overtime. Inclusive bound.
	OvertimeThresholdHours = 9.0
)

// ElapsedHours returns the wall-clock hours between start and end, clamped to
// zero so clock skew can never produce a negative duration.
func ElapsedHours(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// IsOvertime reports whether an elapsed duration qualifies as overtime.
func IsOvertime(elapsedHours float64) bool {
	return elapsedHours >= OvertimeThresholdHours
}

// OvertimeExcess returns the hours worked beyond the overtime threshold.
func OvertimeExcess(elapsedHours float64) float64 {
	return math.Max(0, elapsedHours-OvertimeThresholdHours)
}

// RoundHours rounds an hours value to the given number of decimal places.
// Display only: stored values keep full precision.
func RoundHours(hours float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(hours*pow) / pow
}
