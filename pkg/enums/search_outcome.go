package enums

import "fmt"

// SearchOutcome is the tagged result of a quote search. NotFound is a normal
// outcome, not a failure, and UIs must render the two distinctly.
type SearchOutcome string

const (
	SearchOutcomeFound    SearchOutcome = "found"
	SearchOutcomeNotFound SearchOutcome = "not_found"
	SearchOutcomeError    SearchOutcome = "error"
)

var validSearchOutcomes = []SearchOutcome{
	SearchOutcomeFound,
	SearchOutcomeNotFound,
	SearchOutcomeError,
}

// String implements fmt.Stringer.
func (s SearchOutcome) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SearchOutcome.
func (s SearchOutcome) IsValid() bool {
	for _, candidate := range validSearchOutcomes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSearchOutcome converts raw input into a SearchOutcome.
func ParseSearchOutcome(value string) (SearchOutcome, error) {
	for _, candidate := range validSearchOutcomes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid search outcome %q", value)
}
