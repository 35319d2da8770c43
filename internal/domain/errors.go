package domain

import "errors"

// Sentinel errors for event operations.
var (
	// ErrNotFound is returned when no event row matches the given id.
	ErrNotFound = errors.New("event not found")

	// ErrUnauthorized is returned when the caller identity is not on the
	// admin allowlist. The store operation is never attempted.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when a write payload fails the record
	// contract.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured is returned by the gateway when the store endpoint or
	// the matching credential is unset. It is a configuration failure, not a
	// store error, and is never retried.
	ErrNotConfigured = errors.New("store not configured: ensure STORE_URL and the matching access key are set")
)
