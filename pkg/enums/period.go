package enums

import "fmt"

// PeriodSelector is the reporting window chosen in the admin console.
type PeriodSelector string

const (
	PeriodToday     PeriodSelector = "today"
	PeriodThisWeek  PeriodSelector = "this_week"
	PeriodThisMonth PeriodSelector = "this_month"
	PeriodThisYear  PeriodSelector = "this_year"
	PeriodCustom    PeriodSelector = "custom"
)

var validPeriodSelectors = []PeriodSelector{
	PeriodToday,
	PeriodThisWeek,
	PeriodThisMonth,
	PeriodThisYear,
	PeriodCustom,
}

// String implements fmt.Stringer.
func (p PeriodSelector) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PeriodSelector. Unknown
// selectors are not an error downstream: the period resolver treats them
// as an unbounded range.
func (p PeriodSelector) IsValid() bool {
	for _, candidate := range validPeriodSelectors {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePeriodSelector converts raw input into a PeriodSelector.
func ParsePeriodSelector(value string) (PeriodSelector, error) {
	for _, candidate := range validPeriodSelectors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid period selector %q", value)
}
