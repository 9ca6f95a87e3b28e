package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrDatabaseDisabled is returned when no database is configured.
	ErrDatabaseDisabled = errors.New("database not configured")

	// ErrInvalidOutcome is returned for an empty lookup outcome.
	ErrInvalidOutcome = errors.New("lookup outcome is required")
)
