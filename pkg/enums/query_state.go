package enums

import "fmt"

// QueryState tracks where the search coordinator is in its lifecycle.
type QueryState string

const (
	QueryStateIdle     QueryState = "idle"
	QueryStateQuerying QueryState = "querying"
	QueryStateResolved QueryState = "resolved"
	QueryStateFailed   QueryState = "failed"
)

var validQueryStates = []QueryState{
	QueryStateIdle,
	QueryStateQuerying,
	QueryStateResolved,
	QueryStateFailed,
}

// String implements fmt.Stringer.
func (q QueryState) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QueryState.
func (q QueryState) IsValid() bool {
	for _, candidate := range validQueryStates {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQueryState converts raw input into a QueryState.
func ParseQueryState(value string) (QueryState, error) {
	for _, candidate := range validQueryStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid query state %q", value)
}
