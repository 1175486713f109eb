package domain

import "time"

// WeekHours maps each weekday to its working hours.
type WeekHours map[time.Weekday]float64

// Calendar is the working-time configuration for a project.
type Calendar struct {
	// DefaultWeek holds the hours worked per weekday when no monthly
	// override applies.
	DefaultWeek WeekHours

	// MonthlyOverrides replaces the default week wholesale for any date
	// falling in the given month.
	MonthlyOverrides map[time.Month]WeekHours

	// ExcludeWeekends removes Saturdays and Sundays from the schedule.
	// A monthly override with weekend hours wins over this flag: the
	// override is the more specific, intentional signal.
	ExcludeWeekends bool
}

// StandardWeek returns the default working week: 9h Monday through
// Thursday, 7h Friday, weekends off.
func StandardWeek() WeekHours {
	return WeekHours{
		time.Monday:    9,
		time.Tuesday:   9,
		time.Wednesday: 9,
		time.Thursday:  9,
		time.Friday:    7,
		time.Saturday:  0,
		time.Sunday:    0,
	}
}

// NewCalendar returns a calendar with the standard week and weekends
// excluded.
func NewCalendar() Calendar {
	return Calendar{
		DefaultWeek:      StandardWeek(),
		MonthlyOverrides: map[time.Month]WeekHours{},
		ExcludeWeekends:  true,
	}
}
