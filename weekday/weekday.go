// Package weekday counts occurrences of a weekday inside an inclusive
// dd-mm-yyyy date range.
package weekday

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadDate means an input string is not a valid calendar date in the fixed
// dd-mm-yyyy format.
var ErrBadDate = errors.New("invalid date")

// DateLayout is the only accepted input format: two-digit day, two-digit
// month, four-digit year, dash-separated.
const DateLayout = "02-01-2006"

const daysPerWeek = 7

// ParseDate parses a dd-mm-yyyy date strictly. Unlike a bare time.Parse it
// rejects unpadded components ("1-5-2021") and, like time.Parse, impossible
// calendar dates ("31-02-2021"). The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) || s[2] != '-' || s[5] != '-' {
		return time.Time{}, fmt.Errorf("%w: %q is not dd-mm-yyyy", ErrBadDate, s)
	}
	for i := 0; i < len(s); i++ {
		if i == 2 || i == 5 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: %q is not dd-mm-yyyy", ErrBadDate, s)
		}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrBadDate, s, err)
	}
	return t, nil
}

// Count parses both bounds and returns how many days in [dateFrom, dateTo]
// fall on target. An inverted range counts zero; only unparseable dates are
// errors.
func Count(dateFrom, dateTo string, target time.Weekday) (int, error) {
	start, err := ParseDate(dateFrom)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(dateTo)
	if err != nil {
		return 0, err
	}
	return CountRange(start, end, target), nil
}

// CountRange counts days in the inclusive range [start, end] whose weekday is
// target. Closed-form: find the first matching day at or after start, then
// add one per full week that still fits.
func CountRange(start, end time.Time, target time.Weekday) int {
	if end.Before(start) {
		return 0
	}

	// both bounds are midnight UTC, so this is an exact day count
	total := int(end.Sub(start) / (24 * time.Hour))

	offset := (int(target) - int(start.Weekday()) + daysPerWeek) % daysPerWeek
	if total < offset {
		return 0
	}
	return (total-offset)/daysPerWeek + 1
}
