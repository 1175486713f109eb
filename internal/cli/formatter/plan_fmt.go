package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avelarde/planlevel/internal/domain"
)

// FormatProjectList renders the project listing table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "Name", "Start", "Updated"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Dim(truncID(p.ID)),
			Bold(p.Name),
			p.StartDate.Format(dateLayout),
			p.UpdatedAt.Format(dateLayout),
		})
	}
	return RenderTable(headers, rows)
}

// ProjectInspectData bundles everything the inspect view shows.
type ProjectInspectData struct {
	Project *domain.Project
	Roles   domain.RoleMap
	Tasks   []*domain.Task
}

// FormatProjectInspect renders the full project detail view: settings,
// calendar, role pool and task list.
func FormatProjectInspect(data ProjectInspectData) string {
	p := data.Project

	var b strings.Builder
	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:     %s\n", Dim(p.ID)))
	b.WriteString(fmt.Sprintf("  Start:  %s\n", p.StartDate.Format(dateLayout)))
	b.WriteString("\n")

	b.WriteString(FormatCalendar(p.Calendar))
	b.WriteString("\n")
	b.WriteString(FormatRoleList(data.Roles))
	b.WriteString("\n")
	b.WriteString(FormatTaskList(data.Tasks))

	return b.String()
}

// FormatCalendar renders the working week and any monthly overrides.
func FormatCalendar(cal domain.Calendar) string {
	var b strings.Builder
	b.WriteString("  " + Bold("Calendar") + "\n")
	b.WriteString("    " + formatWeek(cal.DefaultWeek) + "\n")

	if len(cal.MonthlyOverrides) > 0 {
		months := make([]time.Month, 0, len(cal.MonthlyOverrides))
		for m := range cal.MonthlyOverrides {
			months = append(months, m)
		}
		sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
		for _, m := range months {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				StylePurple.Render(m.String()+":"), formatWeek(cal.MonthlyOverrides[m])))
		}
	}
	if cal.ExcludeWeekends {
		b.WriteString("    " + Dim("weekends excluded") + "\n")
	}
	return b.String()
}

func formatWeek(week domain.WeekHours) string {
	parts := make([]string, 0, len(WeekdayOrder))
	for _, wd := range WeekdayOrder {
		h, ok := week[wd]
		if !ok || h <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", wd.String()[:3], FormatHours(h)))
	}
	if len(parts) == 0 {
		return Dim("no working days")
	}
	return strings.Join(parts, "  ")
}

// FormatRoleList renders the role pool sorted by name.
func FormatRoleList(roles domain.RoleMap) string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := []string{"Role", "Availability", "Rate"}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		r := roles[name]
		rate := Dim("—")
		if r.HourlyRate > 0 {
			rate = FormatMoney(r.HourlyRate) + "/h"
		}
		rows = append(rows, []string{
			Bold(r.Name),
			fmt.Sprintf("%.0f%%", r.AvailabilityPct),
			rate,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskList renders the task table with dependencies and dates.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "Phase", "Task", "Effort", "Assigned", "Deps", "Start", "End", "Status"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		phase := t.Phase
		if phase == "" {
			phase = "—"
		}
		assigned := make([]string, 0, len(t.Assignments))
		for _, a := range t.Assignments {
			assigned = append(assigned, fmt.Sprintf("%s %.0f%%", a.Role, a.AllocationPct))
		}
		deps := make([]string, 0, len(t.DependsOn))
		for _, d := range t.DependsOn {
			deps = append(deps, fmt.Sprintf("%d", d))
		}
		depStr := strings.Join(deps, ",")
		if depStr == "" {
			depStr = "—"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			Dim(phase),
			t.Name,
			FormatHours(t.EffortHours),
			strings.Join(assigned, ", "),
			Dim(depStr),
			FormatDate(t.StartDate),
			FormatDate(t.EndDate),
			StatusPill(t.Status),
		})
	}
	return RenderTable(headers, rows)
}

func truncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
