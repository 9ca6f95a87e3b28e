package models

// AgeEstimate is the response body of the age-estimation service.
// It is passed through to the page unchanged.
type AgeEstimate struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
	Age   *int   `json:"age"` // nil when the service has no data for the name
}

// HasAge returns true if the service returned an age for the name.
func (e *AgeEstimate) HasAge() bool {
	return e != nil && e.Age != nil
}

// AgeValue returns the estimated age, or 0 when there is none.
func (e *AgeEstimate) AgeValue() int {
	if !e.HasAge() {
		return 0
	}
	return *e.Age
}
