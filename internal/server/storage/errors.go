package storage

import "errors"

// Common storage errors
var (
	// ErrAppNotFound indicates that app was not found in storage
	ErrAppNotFound = errors.New("app not found")

	// ErrAppAlreadyExists indicates that app with this id already exists
	ErrAppAlreadyExists = errors.New("app already exists")

	// ErrAccountNotFound indicates that account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAppDataNotFound indicates that no data was written for the app/account pair
	ErrAppDataNotFound = errors.New("app account data not found")
)
