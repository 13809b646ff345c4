package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCorrupt is returned when persisted data cannot be decoded.
	ErrCorrupt = errors.New("persisted data is corrupt")
)
