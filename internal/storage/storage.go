package storage

import "errors"

var (
	// ErrNotFound is returned when no row exists for the requested id.
	ErrNotFound = errors.New("not found")

	// ErrTimeConflict is returned when a booking overlaps an approved
	// booking for the same hall and date.
	ErrTimeConflict = errors.New("time slot not available")

	// ErrNoFields is returned when an update maps to an empty field set.
	ErrNoFields = errors.New("no fields to update")
)
