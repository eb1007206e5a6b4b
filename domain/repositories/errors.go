package repositories

import "errors"

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a conditional replace lost a race: the
	// record still exists but its version no longer matches the caller's.
	ErrConflict = errors.New("record was modified concurrently")
)
