package forecast

import "time"

// FilterByHorizon keeps the opportunities whose close date falls inside
// [today, today+horizonDays], both bounds inclusive. A close date equal to
// today is included. horizonDays == 0 disables the filter entirely.
//
// "today" is injected rather than read from the clock so callers (and tests)
// control the reference date. Comparison happens at calendar-date
// granularity; time-of-day and zone offsets on the close date are ignored.
func FilterByHorizon(opps []Opportunity, horizonDays int, today time.Time) ([]Opportunity, int) {
	if horizonDays == 0 {
		return opps, 0
	}

	start := dateOnly(today)
	end := start.AddDate(0, 0, horizonDays)

	included := make([]Opportunity, 0, len(opps))
	for _, o := range opps {
		d := dateOnly(o.CloseDate)
		if !d.Before(start) && !d.After(end) {
			included = append(included, o)
		}
	}
	return included, len(opps) - len(included)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
