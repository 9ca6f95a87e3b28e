package models

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestLookupResult_Outcome(t *testing.T) {
	tests := []struct {
		name     string
		result   LookupResult
		expected string
	}{
		{"empty lookup", EmptyLookup(), OutcomeEmpty},
		{"estimate with age", SuccessfulLookup("Maria", AgeEstimate{Count: 1234, Name: "Maria", Age: intPtr(34)}), OutcomeSuccess},
		{"estimate without age", SuccessfulLookup("Zzqx", AgeEstimate{Name: "Zzqx"}), OutcomeNoData},
		{"failed lookup", FailedLookup("Zzqx", "boom"), OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Outcome(); got != tt.expected {
				t.Errorf("Outcome() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookupResult_MutualExclusion(t *testing.T) {
	results := []LookupResult{
		EmptyLookup(),
		SuccessfulLookup("Ana", AgeEstimate{Name: "Ana", Age: intPtr(50)}),
		FailedLookup("Ana", "boom"),
	}

	for _, r := range results {
		if r.HasData() && r.HasError() {
			t.Errorf("result %+v has both data and error", r)
		}
	}

	if !EmptyLookup().IsEmpty() {
		t.Error("EmptyLookup() should be empty")
	}
	if EmptyLookup().Name != "" {
		t.Errorf("EmptyLookup().Name = %q, want empty", EmptyLookup().Name)
	}
}

func TestLookupResult_ErrorMessage(t *testing.T) {
	if got := EmptyLookup().ErrorMessage(); got != "" {
		t.Errorf("ErrorMessage() = %q, want empty", got)
	}
	if got := FailedLookup("x", "try again").ErrorMessage(); got != "try again" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "try again")
	}
}

func TestLookupResult_JSONShape(t *testing.T) {
	tests := []struct {
		name   string
		result LookupResult
		want   string
	}{
		{
			name:   "empty",
			result: EmptyLookup(),
			want:   `{"name":"","ageData":null}`,
		},
		{
			name:   "success",
			result: SuccessfulLookup("Maria", AgeEstimate{Count: 1234, Name: "Maria", Age: intPtr(34)}),
			want:   `{"name":"Maria","ageData":{"count":1234,"name":"Maria","age":34}}`,
		},
		{
			name:   "null age",
			result: SuccessfulLookup("Zzqx", AgeEstimate{Count: 0, Name: "Zzqx"}),
			want:   `{"name":"Zzqx","ageData":{"count":0,"name":"Zzqx","age":null}}`,
		},
		{
			name:   "failure",
			result: FailedLookup("Zzqx", "Error fetching age data. Please try again."),
			want:   `{"name":"Zzqx","ageData":null,"error":"Error fetching age data. Please try again."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAgeEstimate_AgeValue(t *testing.T) {
	var nilEstimate *AgeEstimate
	if nilEstimate.HasAge() {
		t.Error("nil estimate should not have an age")
	}
	if got := (&AgeEstimate{}).AgeValue(); got != 0 {
		t.Errorf("AgeValue() = %d, want 0", got)
	}
	if got := (&AgeEstimate{Age: intPtr(34)}).AgeValue(); got != 34 {
		t.Errorf("AgeValue() = %d, want 34", got)
	}
}
