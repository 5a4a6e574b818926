package weather

import "time"

// DateLayout is the calendar date format accepted on the command line
// and used in provider payloads.
const DateLayout = "2006-01-02"

// Today returns the current local calendar date, truncated to midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaysFromToday returns how many calendar days ahead of today's local
// date the given date lies: 0 for today, 1 for tomorrow. Negative values
// mean the date is in the past.
func DaysFromToday(date time.Time) int {
	return daysBetween(Today(), date)
}

// daysBetween counts calendar days from a to b. Both dates are
// normalized to UTC midnights first so DST transitions, which make some
// local days 23 or 25 hours long, cannot skew the count.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
