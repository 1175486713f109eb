package planfile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avelarde/planlevel/internal/domain"
)

// weekdayNames maps the plan-file day names to weekdays.
var weekdayNames = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

const dateLayout = "2006-01-02"

// Validate checks a plan file for structural errors before conversion.
// Returns every validation error found. Structural problems here fail
// the whole import; the scheduler never sees invalid input.
func Validate(schema *Schema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateCalendar(&schema.Calendar)...)
	errs = append(errs, validateRoles(schema.Roles)...)
	errs = append(errs, validateTasks(schema.Tasks, schema.Roles)...)

	return errs
}

func validateProject(p *ProjectSection) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("project.start_date is required"))
	} else if _, err := time.Parse(dateLayout, p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("project.start_date: invalid date %q (expected YYYY-MM-DD)", p.StartDate))
	}

	return errs
}

func validateCalendar(c *CalendarSection) []error {
	var errs []error

	if len(c.DefaultWeek) == 0 {
		errs = append(errs, fmt.Errorf("calendar.default_week is required"))
	}
	errs = append(errs, validateWeek("calendar.default_week", c.DefaultWeek)...)

	for key, week := range c.MonthlyOverrides {
		month, err := strconv.Atoi(key)
		if err != nil || month < 1 || month > 12 {
			errs = append(errs, fmt.Errorf("calendar.monthly_overrides: invalid month key %q (expected 1..12)", key))
			continue
		}
		errs = append(errs, validateWeek(fmt.Sprintf("calendar.monthly_overrides.%s", key), week)...)
	}

	return errs
}

func validateWeek(prefix string, week map[string]float64) []error {
	var errs []error
	for day, hours := range week {
		if _, ok := weekdayNames[day]; !ok {
			errs = append(errs, fmt.Errorf("%s: unknown weekday %q", prefix, day))
		}
		if hours < 0 || hours > 24 {
			errs = append(errs, fmt.Errorf("%s.%s: hours %v out of range [0,24]", prefix, day, hours))
		}
	}
	return errs
}

func validateRoles(roles map[string]RoleSection) []error {
	var errs []error
	for name, role := range roles {
		if name == "" {
			errs = append(errs, fmt.Errorf("roles: empty role name"))
		}
		if role.AvailabilityPercent < 0 || role.AvailabilityPercent > 100 {
			errs = append(errs, fmt.Errorf("roles.%s: availability_percent %v out of range [0,100]", name, role.AvailabilityPercent))
		}
		if role.HourlyRate < 0 {
			errs = append(errs, fmt.Errorf("roles.%s: hourly_rate must not be negative", name))
		}
	}
	return errs
}

func validateTasks(tasks []TaskSection, roles map[string]RoleSection) []error {
	var errs []error

	ids := make(map[int]bool, len(tasks))
	for _, task := range tasks {
		if ids[task.ID] {
			errs = append(errs, fmt.Errorf("tasks: duplicate id %d", task.ID))
		}
		ids[task.ID] = true
	}

	for _, task := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", task.ID)

		if task.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if task.EffortHours < 0 {
			errs = append(errs, fmt.Errorf("%s: effort_hours must not be negative", prefix))
		}
		if task.Status != "" && !domain.ValidTaskStatuses[task.Status] {
			errs = append(errs, fmt.Errorf("%s: invalid status %q", prefix, task.Status))
		}

		seen := make(map[string]bool, len(task.Assignments))
		for _, a := range task.Assignments {
			if _, ok := roles[a.Role]; !ok {
				errs = append(errs, fmt.Errorf("%s: assignment references unknown role %q", prefix, a.Role))
			}
			if seen[a.Role] {
				errs = append(errs, fmt.Errorf("%s: role %q assigned more than once", prefix, a.Role))
			}
			seen[a.Role] = true
			if a.Allocation < 0 || a.Allocation > 100 {
				errs = append(errs, fmt.Errorf("%s: allocation %v for role %q out of range [0,100]", prefix, a.Allocation, a.Role))
			}
		}

		for _, dep := range task.Dependencies {
			if dep == task.ID {
				errs = append(errs, fmt.Errorf("%s: depends on itself", prefix))
			} else if !ids[dep] {
				errs = append(errs, fmt.Errorf("%s: dependency references unknown task id %d", prefix, dep))
			}
		}

		for _, field := range []struct {
			name  string
			value *string
		}{{"start_date", task.StartDate}, {"end_date", task.EndDate}} {
			if field.value == nil {
				continue
			}
			if _, err := time.Parse(dateLayout, *field.value); err != nil {
				errs = append(errs, fmt.Errorf("%s: invalid %s %q (expected YYYY-MM-DD)", prefix, field.name, *field.value))
			}
		}
	}

	return errs
}
