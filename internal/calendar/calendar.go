// Package calendar answers working-time questions for a single project
// calendar: hours worked on a date, whether a date is a working day, and
// the next working day on or after a date.
package calendar

import (
	"errors"
	"time"

	"github.com/avelarde/planlevel/internal/domain"
)

// nextDayHorizon bounds the next-working-day scan. A calendar that yields
// no working day within two years is considered misconfigured.
const nextDayHorizon = 730

// ErrNoWorkingDays reports a calendar configuration with no reachable
// working day inside the search horizon.
var ErrNoWorkingDays = errors.New("calendar yields no working days within the search horizon")

// Calendar evaluates a domain calendar configuration. It is a pure value;
// copies are safe to share.
type Calendar struct {
	cfg domain.Calendar
}

// New wraps a calendar configuration.
func New(cfg domain.Calendar) Calendar {
	return Calendar{cfg: cfg}
}

// Config returns the wrapped configuration.
func (c Calendar) Config() domain.Calendar {
	return c.cfg
}

// WorkingHours returns the hours worked on the given date. A monthly
// override, when present for the date's month, replaces the default week
// wholesale; absent weekday entries count as zero.
func (c Calendar) WorkingHours(date time.Time) float64 {
	if week, ok := c.cfg.MonthlyOverrides[date.Month()]; ok {
		return week[date.Weekday()]
	}
	return c.cfg.DefaultWeek[date.Weekday()]
}

// IsWorkingDay reports whether any work happens on the given date.
// Weekend exclusion does not apply to months with an override: override
// hours are the more specific signal and win over the flag.
func (c Calendar) IsWorkingDay(date time.Time) bool {
	if c.WorkingHours(date) <= 0 {
		return false
	}
	if !c.cfg.ExcludeWeekends {
		return true
	}
	wd := date.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return true
	}
	_, overridden := c.cfg.MonthlyOverrides[date.Month()]
	return overridden
}

// NextWorkingDay returns the smallest working day on or after the given
// date. Returns ErrNoWorkingDays when the scan exceeds the safety horizon.
func (c Calendar) NextWorkingDay(date time.Time) (time.Time, error) {
	day := domain.DayOf(date)
	for i := 0; i <= nextDayHorizon; i++ {
		if c.IsWorkingDay(day) {
			return day, nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, ErrNoWorkingDays
}

// AvgDailyCapacity returns the mean hours of a default-week working day,
// honoring weekend exclusion. Zero when the default week has no working
// days. Used for advisory duration estimates only.
func (c Calendar) AvgDailyCapacity() float64 {
	var total float64
	var days int
	for wd, hours := range c.cfg.DefaultWeek {
		if hours <= 0 {
			continue
		}
		if c.cfg.ExcludeWeekends && (wd == time.Saturday || wd == time.Sunday) {
			continue
		}
		total += hours
		days++
	}
	if days == 0 {
		return 0
	}
	return total / float64(days)
}

// WorkingHoursBetween sums the working hours over [start, end] inclusive.
func (c Calendar) WorkingHoursBetween(start, end time.Time) float64 {
	day := domain.DayOf(start)
	last := domain.DayOf(end)
	var total float64
	for !day.After(last) {
		if c.IsWorkingDay(day) {
			total += c.WorkingHours(day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return total
}
