package models

// DefaultFetchErrorMessage is shown when an age estimate could not be fetched.
const DefaultFetchErrorMessage = "Error fetching age data. Please try again."

// LookupResult is the page data produced for a single name lookup.
//
// AgeData and Error are mutually exclusive. Both are nil only when the
// name was empty and no lookup was attempted.
type LookupResult struct {
	Name    string       `json:"name"`
	AgeData *AgeEstimate `json:"ageData"`
	Error   *string      `json:"error,omitempty"`
}

// EmptyLookup returns the result for a blank or missing name.
func EmptyLookup() LookupResult {
	return LookupResult{Name: ""}
}

// SuccessfulLookup returns the result for an estimate fetched for name.
func SuccessfulLookup(name string, estimate AgeEstimate) LookupResult {
	return LookupResult{Name: name, AgeData: &estimate}
}

// FailedLookup returns the result for a lookup that could not be completed.
func FailedLookup(name, message string) LookupResult {
	return LookupResult{Name: name, Error: &message}
}

// HasError returns true if the lookup was attempted and failed.
func (r LookupResult) HasError() bool {
	return r.Error != nil
}

// HasData returns true if the lookup returned an estimate.
func (r LookupResult) HasData() bool {
	return r.AgeData != nil
}

// IsEmpty returns true if no lookup was attempted.
func (r LookupResult) IsEmpty() bool {
	return r.AgeData == nil && r.Error == nil
}

// ErrorMessage returns the user-facing error message, or "" if none.
func (r LookupResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Outcome classifies the result for metrics.
func (r LookupResult) Outcome() string {
	switch {
	case r.HasError():
		return OutcomeFailure
	case r.HasData() && !r.AgeData.HasAge():
		return OutcomeNoData
	case r.HasData():
		return OutcomeSuccess
	default:
		return OutcomeEmpty
	}
}
