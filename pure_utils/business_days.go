package pure_utils

import (
	"time"

	"github.com/cockroachdb/errors"
)

var ErrNegativeDayCount = errors.New("day count must be non-negative")

// AddBusinessDays advances start one calendar day at a time, skipping
// Saturdays and Sundays, until n non-weekend days have been counted.
// n=0 returns start unchanged, even if start itself falls on a weekend:
// the weekend rule only applies to the days being added.
func AddBusinessDays(start time.Time, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, errors.WithDetailf(ErrNegativeDayCount, "got %d business days", n)
	}

	current := start
	for added := 0; added < n; {
		current = current.AddDate(0, 0, 1)
		if !IsWeekend(current) {
			added++
		}
	}
	return current, nil
}

// AddCalendarDays is a plain offset, weekends included.
func AddCalendarDays(start time.Time, n int) time.Time {
	return start.AddDate(0, 0, n)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
