// Package timeslot implements the booking time arithmetic: HH:MM start
// times converted to minutes since midnight, enumerated duration tokens
// and the half-open interval overlap test.
package timeslot

import (
	"strconv"
	"strings"
)

const fullDayMinutes = 8 * 60

// ToMinutes converts an HH:MM (or HH:MM:SS) string to minutes since
// midnight. Missing or malformed components count as 0.
func ToMinutes(t string) int {
	parts := strings.Split(t, ":")

	h, _ := strconv.Atoi(parts[0])

	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}

	return h*60 + m
}

// DurationMinutes maps a duration token to minutes: "1".."4" mean that
// many hours, "full-day" is a fixed 8-hour block.
func DurationMinutes(d string) int {
	if d == "full-day" {
		return fullDayMinutes
	}

	n, _ := strconv.Atoi(d)

	return n * 60
}

// Conflicts reports whether two bookings overlap in time. Intervals are
// half-open, so a booking ending exactly when another starts does not
// conflict.
func Conflicts(startA, durA, startB, durB string) bool {
	aStart := ToMinutes(startA)
	aEnd := aStart + DurationMinutes(durA)

	bStart := ToMinutes(startB)
	bEnd := bStart + DurationMinutes(durB)

	return aStart < bEnd && bStart < aEnd
}
