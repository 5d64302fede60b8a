package storage

import "errors"

// Common client storage errors
var (
	// ErrProfileNotFound indicates that no app profile is saved
	ErrProfileNotFound = errors.New("app profile not found")
)
