// Package timerange converts symbolic time ranges into concrete timestamp
// bounds. All arithmetic happens in UTC.
//
// "month" and "year" are fixed 30- and 365-day windows, not calendar
// spans.
package timerange

import (
	"fmt"
	"time"

	"github.com/jgirmay/forgelog/internal/common/apperr"
)

// Symbolic range tokens.
const (
	Today = "today"
	Week  = "week"
	Month = "month"
	Year  = "year"
)

var tokenDays = map[string]int{
	Today: 1,
	Week:  7,
	Month: 30,
	Year:  365,
}

// Resolve converts a symbolic token into [start, end] bounds around now.
// Unknown tokens yield a range error.
func Resolve(token string, now time.Time) (time.Time, time.Time, error) {
	days, ok := tokenDays[token]
	if !ok {
		return time.Time{}, time.Time{}, apperr.Range(
			fmt.Sprintf("unrecognized time range %q", token),
			"expected one of: today, week, month, year",
		)
	}
	return ResolveDays(days, now)
}

// ResolveDays converts an explicit day count into [start, end] bounds.
// end is the last representable moment (microsecond precision) of now's
// calendar day; start is midnight of the day (days-1) days earlier. Both
// bounds are inclusive.
func ResolveDays(days int, now time.Time) (time.Time, time.Time, error) {
	if days < 1 {
		return time.Time{}, time.Time{}, apperr.Range(
			fmt.Sprintf("invalid day count %d", days),
			"day count must be at least 1",
		)
	}

	now = now.UTC()
	y, m, d := now.Date()
	end := time.Date(y, m, d, 23, 59, 59, 999999000, time.UTC)
	startDay := end.AddDate(0, 0, -(days - 1))
	sy, sm, sd := startDay.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
