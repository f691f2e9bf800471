package reporting

import (
	"time"

	"github.com/shipdeskhq/shipdesk-backend/pkg/enums"
)

const dayFormat = "2006-01-02"

// PeriodSelection is the user's reporting-window choice before resolution.
type PeriodSelection struct {
	Selector enums.PeriodSelector `json:"period"`
	// Month overrides the current month for the this_month selector. It is
	// zero-based (January = 0), matching the console's date picker.
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
	// From/To bound the custom selector as 2006-01-02 dates. A missing or
	// unparseable side degrades to unbounded, never to an error.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// ResolvePeriod turns a period selection into a concrete date range. The
// clock is supplied by the caller so builds are reproducible; the range is
// anchored in now's location. Unknown selectors resolve to an unbounded
// range, which disables filtering downstream.
func ResolvePeriod(sel PeriodSelection, now time.Time) DateRange {
	loc := now.Location()

	switch sel.Selector {
	case enums.PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return DateRange{Start: &start, End: &now}

	case enums.PeriodThisWeek:
		// Weeks start Monday; on Sunday go back six days, not zero.
		offset := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -offset)
		start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
		return DateRange{Start: &start, End: &now}

	case enums.PeriodThisMonth:
		year := now.Year()
		if sel.Year != nil {
			year = *sel.Year
		}
		month := int(now.Month()) - 1
		if sel.Month != nil {
			month = *sel.Month
		}
		start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
		// Day zero of the next month is the last day of the selected one.
		end := time.Date(year, time.Month(month+2), 0, 23, 59, 59, int(999*time.Millisecond), loc)
		return DateRange{Start: &start, End: &end}

	case enums.PeriodThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return DateRange{Start: &start, End: &now}

	case enums.PeriodCustom:
		var rng DateRange
		if sel.From != "" {
			if from, err := time.ParseInLocation(dayFormat, sel.From, loc); err == nil {
				rng.Start = &from
			}
		}
		if sel.To != "" {
			if to, err := time.ParseInLocation(dayFormat, sel.To, loc); err == nil {
				end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, loc)
				rng.End = &end
			}
		}
		if rng.End == nil {
			rng.End = &now
		}
		return rng

	default:
		return DateRange{}
	}
}
