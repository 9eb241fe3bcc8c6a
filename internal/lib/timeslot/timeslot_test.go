package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Morning time", input: "09:00", expected: 540},
		{name: "With seconds", input: "09:30:00", expected: 570},
		{name: "Midnight", input: "00:00", expected: 0},
		{name: "Late evening", input: "23:45", expected: 1425},
		{name: "Hour only", input: "10", expected: 600},
		{name: "Empty string", input: "", expected: 0},
		{name: "Garbage hour", input: "abc:30", expected: 30},
		{name: "Garbage minute", input: "10:xy", expected: 600},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, ToMinutes(tc.input))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		token    string
		expected int
	}{
		{name: "One hour", token: "1", expected: 60},
		{name: "Two hours", token: "2", expected: 120},
		{name: "Three hours", token: "3", expected: 180},
		{name: "Four hours", token: "4", expected: 240},
		{name: "Full day is eight hours", token: "full-day", expected: 480},
		{name: "Unknown token", token: "whatever", expected: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, DurationMinutes(tc.token))
		})
	}
}

func TestConflicts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		startA   string
		durA     string
		startB   string
		durB     string
		expected bool
	}{
		{
			name:   "Candidate starts inside existing",
			startA: "10:30", durA: "1",
			startB: "09:00", durB: "2",
			expected: true,
		},
		{
			name:   "Candidate fully covers existing",
			startA: "08:00", durA: "4",
			startB: "09:00", durB: "1",
			expected: true,
		},
		{
			name:   "Touching boundary is not a conflict",
			startA: "11:00", durA: "1",
			startB: "09:00", durB: "2",
			expected: false,
		},
		{
			name:   "Disjoint slots",
			startA: "14:00", durA: "2",
			startB: "09:00", durB: "1",
			expected: false,
		},
		{
			name:   "Full day from morning blocks afternoon",
			startA: "15:00", durA: "1",
			startB: "09:00", durB: "full-day",
			expected: true,
		},
		{
			name:   "Full day ends after eight hours, not at midnight",
			startA: "17:30", durA: "1",
			startB: "09:00", durB: "full-day",
			expected: false,
		},
		{
			name:   "Identical slots",
			startA: "09:00", durA: "2",
			startB: "09:00", durB: "2",
			expected: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Conflicts(tc.startA, tc.durA, tc.startB, tc.durB))
			assert.Equal(t, tc.expected, Conflicts(tc.startB, tc.durB, tc.startA, tc.durA),
				"overlap must be symmetric")
		})
	}
}
