package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that no record exists for the given ID
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflictNotFound indicates that no queued conflict exists for the given ID
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
