package repository

import "github.com/m-mizutani/goerr/v2"

// Errors shared by the ScanRepository implementations. Callers test them with errors.Is.
var (
	// ErrNotFound is returned when no scan record has the requested ID
	ErrNotFound = goerr.New("scan record not found")

	// ErrInvalidInput is returned for a nil record, an empty or malformed scan ID and a
	// malformed storage location
	ErrInvalidInput = goerr.New("invalid scan record input")
)
