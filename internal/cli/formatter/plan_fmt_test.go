package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelarde/planlevel/internal/domain"
)

func TestFormatProjectList(t *testing.T) {
	now := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	projects := []*domain.Project{
		{ID: "abcdef12-3456", Name: "AI Platform", StartDate: now, UpdatedAt: now},
	}

	out := FormatProjectList(projects)

	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-")
	assert.Contains(t, out, "AI Platform")
	assert.Contains(t, out, "2025-06-02")
}

func TestFormatRoleList_SortedWithRates(t *testing.T) {
	roles := domain.RoleMap{
		"Tech Lead":   {Name: "Tech Lead", AvailabilityPct: 50, HourlyRate: 40},
		"AI Engineer": {Name: "AI Engineer", AvailabilityPct: 100},
	}

	out := FormatRoleList(roles)

	assert.Contains(t, out, "AI Engineer")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "40/h")
	assert.Less(t, strings.Index(out, "AI Engineer"), strings.Index(out, "Tech Lead"))
}

func TestFormatTaskList(t *testing.T) {
	tasks := []*domain.Task{
		{ID: 1, Phase: "Research", Name: "Benchmark", EffortHours: 16,
			Assignments: []domain.Assignment{{Role: "AI Engineer", AllocationPct: 100}},
			DependsOn:   []int{100},
			Status:      domain.TaskPending},
	}

	out := FormatTaskList(tasks)

	assert.Contains(t, out, "Benchmark")
	assert.Contains(t, out, "AI Engineer 100%")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "16h")
	assert.Contains(t, out, "Pending")
}

func TestFormatCalendar(t *testing.T) {
	cal := domain.Calendar{
		DefaultWeek: domain.WeekHours{time.Monday: 8, time.Friday: 6},
		MonthlyOverrides: map[time.Month]domain.WeekHours{
			time.August: {time.Monday: 4},
		},
		ExcludeWeekends: true,
	}

	out := FormatCalendar(cal)

	assert.Contains(t, out, "Mon 8h")
	assert.Contains(t, out, "Fri 6h")
	assert.Contains(t, out, "August:")
	assert.Contains(t, out, "Mon 4h")
	assert.Contains(t, out, "weekends excluded")
}

func TestFormatCalendar_NoWorkingDays(t *testing.T) {
	out := FormatCalendar(domain.Calendar{DefaultWeek: domain.WeekHours{}})
	assert.Contains(t, out, "no working days")
}
