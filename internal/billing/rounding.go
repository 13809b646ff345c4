package billing

import (
	"fmt"
	"math"
)

// DefaultQuantum is the billing granularity in seconds (15 minutes).
const DefaultQuantum int64 = 900

// RoundUpToQuantum rounds seconds up to the next multiple of quantumSeconds.
// Non-positive input returns 0; exact multiples are returned unchanged.
// The ceiling is taken on real minutes, so a quantum that is not a whole
// number of minutes still rounds on the minute count.
// A non-positive quantum falls back to DefaultQuantum.
func RoundUpToQuantum(seconds, quantumSeconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	if quantumSeconds <= 0 {
		quantumSeconds = DefaultQuantum
	}

	minutes := float64(seconds) / 60
	quantumMin := float64(quantumSeconds) / 60
	rounded := math.Ceil(minutes/quantumMin) * quantumMin
	return int64(math.Round(rounded * 60))
}

// SplitHoursMinutes splits seconds into whole hours and leftover minutes.
// No rounding is applied.
func SplitHoursMinutes(seconds int64) (hours, minutes int64) {
	hours = seconds / 3600
	minutes = (seconds % 3600) / 60
	return hours, minutes
}

// Minutes returns seconds as whole minutes, truncated.
func Minutes(seconds int64) int64 {
	return seconds / 60
}

// FormatClock renders seconds as "HH:MM".
func FormatClock(seconds int64) string {
	h, m := SplitHoursMinutes(seconds)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatBilled renders seconds as "Xh Ym".
func FormatBilled(seconds int64) string {
	h, m := SplitHoursMinutes(seconds)
	return fmt.Sprintf("%dh %dm", h, m)
}

// QuantumFromMinutes converts a configured quantum in minutes to seconds.
func QuantumFromMinutes(minutes int) int64 {
	if minutes <= 0 {
		return DefaultQuantum
	}
	return int64(minutes) * 60
}
