package domain

import "errors"

var (
	// Validation: a required field is missing, rejected before any external call.
	ErrInvalidArgument = errors.New("invalid argument")
	// Configuration: a credential or secret is missing, reported as a server fault.
	ErrNotConfigured = errors.New("not configured")

	ErrNotFound           = errors.New("entity not found")
	ErrInvalidExecContext = errors.New("invalid database execution context")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
)
