package models

import "time"

// Lookup outcome constants
const (
	OutcomeEmpty   = "empty"
	OutcomeSuccess = "success"
	OutcomeNoData  = "no_data"
	OutcomeFailure = "failure"
)

// LookupOutcome represents a persisted lookup count by outcome.
type LookupOutcome struct {
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
