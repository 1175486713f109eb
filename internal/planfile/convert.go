package planfile

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/avelarde/planlevel/internal/domain"
)

// Plan is the domain form of a plan file.
type Plan struct {
	Project domain.Project
	Roles   domain.RoleMap
	Tasks   []domain.Task
}

// ToDomain converts a validated schema into domain values. Tasks come
// back sorted by ascending id.
func ToDomain(schema *Schema) (*Plan, error) {
	start, err := time.Parse(dateLayout, schema.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing project start date: %w", err)
	}

	cal := domain.Calendar{
		DefaultWeek:      toWeekHours(schema.Calendar.DefaultWeek),
		MonthlyOverrides: map[time.Month]domain.WeekHours{},
		ExcludeWeekends:  schema.Calendar.ExcludeWeekends,
	}
	for key, week := range schema.Calendar.MonthlyOverrides {
		month, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parsing override month %q: %w", key, err)
		}
		cal.MonthlyOverrides[time.Month(month)] = toWeekHours(week)
	}

	roles := make(domain.RoleMap, len(schema.Roles))
	for name, r := range schema.Roles {
		roles[name] = domain.Role{
			Name:            name,
			AvailabilityPct: r.AvailabilityPercent,
			HourlyRate:      r.HourlyRate,
		}
	}

	tasks := make([]domain.Task, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		task := domain.Task{
			ID:          t.ID,
			Phase:       t.Phase,
			Name:        t.Name,
			EffortHours: t.EffortHours,
			Assignments: make([]domain.Assignment, 0, len(t.Assignments)),
			DependsOn:   append([]int(nil), t.Dependencies...),
			Status:      domain.TaskPending,
		}
		for _, a := range t.Assignments {
			task.Assignments = append(task.Assignments, domain.Assignment{
				Role:          a.Role,
				AllocationPct: a.Allocation,
			})
		}
		if t.Status != "" {
			task.Status = domain.TaskStatus(t.Status)
		}
		if task.StartDate, err = parseOptionalDate(t.StartDate); err != nil {
			return nil, fmt.Errorf("task %d: %w", t.ID, err)
		}
		if task.EndDate, err = parseOptionalDate(t.EndDate); err != nil {
			return nil, fmt.Errorf("task %d: %w", t.ID, err)
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return &Plan{
		Project: domain.Project{
			Name:      schema.Project.Name,
			StartDate: domain.DayOf(start),
			Calendar:  cal,
		},
		Roles: roles,
		Tasks: tasks,
	}, nil
}

// FromDomain converts domain values back into the plan-file schema,
// preserving any start/end dates and statuses a leveling run produced.
func FromDomain(plan *Plan) *Schema {
	schema := &Schema{
		Project: ProjectSection{
			Name:      plan.Project.Name,
			StartDate: plan.Project.StartDate.Format(dateLayout),
		},
		Calendar: CalendarSection{
			DefaultWeek:     fromWeekHours(plan.Project.Calendar.DefaultWeek),
			ExcludeWeekends: plan.Project.Calendar.ExcludeWeekends,
		},
		Roles: map[string]RoleSection{},
	}

	if len(plan.Project.Calendar.MonthlyOverrides) > 0 {
		schema.Calendar.MonthlyOverrides = map[string]map[string]float64{}
		for month, week := range plan.Project.Calendar.MonthlyOverrides {
			schema.Calendar.MonthlyOverrides[strconv.Itoa(int(month))] = fromWeekHours(week)
		}
	}

	for name, role := range plan.Roles {
		schema.Roles[name] = RoleSection{
			AvailabilityPercent: role.AvailabilityPct,
			HourlyRate:          role.HourlyRate,
		}
	}

	tasks := make([]domain.Task, len(plan.Tasks))
	copy(tasks, plan.Tasks)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	for _, t := range tasks {
		section := TaskSection{
			ID:           t.ID,
			Phase:        t.Phase,
			Name:         t.Name,
			EffortHours:  t.EffortHours,
			Assignments:  make([]AssignmentSection, 0, len(t.Assignments)),
			Dependencies: append([]int{}, t.DependsOn...),
			Status:       string(t.Status),
		}
		for _, a := range t.Assignments {
			section.Assignments = append(section.Assignments, AssignmentSection{
				Role:       a.Role,
				Allocation: a.AllocationPct,
			})
		}
		section.StartDate = formatOptionalDate(t.StartDate)
		section.EndDate = formatOptionalDate(t.EndDate)
		schema.Tasks = append(schema.Tasks, section)
	}

	return schema
}

func toWeekHours(week map[string]float64) domain.WeekHours {
	out := domain.WeekHours{}
	for day, hours := range week {
		if wd, ok := weekdayNames[day]; ok {
			out[wd] = hours
		}
	}
	return out
}

func fromWeekHours(week domain.WeekHours) map[string]float64 {
	out := make(map[string]float64, len(week))
	for name, wd := range weekdayNames {
		if hours, ok := week[wd]; ok {
			out[name] = hours
		}
	}
	return out
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	day := domain.DayOf(t)
	return &day, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
