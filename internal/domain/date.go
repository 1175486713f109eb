package domain

import "time"

// Date returns midnight UTC for the given day. All scheduling dates are
// normalized this way so they compare and key maps reliably.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates a timestamp to its midnight-UTC date.
func DayOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
