package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelarde/planlevel/internal/contract"
	"github.com/avelarde/planlevel/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// FormatSchedule renders the outcome of a leveling run: one table row per
// task plus a summary line.
func FormatSchedule(resp *contract.LevelResponse) string {
	var b strings.Builder

	b.WriteString(Header("Schedule: " + resp.ProjectName))
	b.WriteString("\n")

	headers := []string{"ID", "Phase", "Task", "Start", "End", "Status"}
	rows := make([][]string, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		phase := t.Phase
		if phase == "" {
			phase = "—"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			Dim(phase),
			t.Name,
			FormatDate(t.StartDate),
			FormatDate(t.EndDate),
			StatusPill(t.Status),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if end := resp.ProjectEnd(); end != nil {
		b.WriteString(fmt.Sprintf("  Project end: %s\n", Bold(end.Format(dateLayout))))
	}
	b.WriteString(fmt.Sprintf("  Passes:      %d\n", resp.Passes))
	if len(resp.Unscheduled) > 0 {
		ids := make([]string, 0, len(resp.Unscheduled))
		for _, id := range resp.Unscheduled {
			ids = append(ids, fmt.Sprintf("%d", id))
		}
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("Unscheduled: %s", strings.Join(ids, ", "))) + "\n")
	}

	return b.String()
}

// FormatScheduleBars renders an ASCII timeline, one row per task, one
// block per working day. Milestones show as a single diamond.
func FormatScheduleBars(resp *contract.LevelResponse) string {
	var first, last *time.Time
	for i := range resp.Tasks {
		t := resp.Tasks[i]
		if t.StartDate == nil || t.EndDate == nil {
			continue
		}
		if first == nil || t.StartDate.Before(*first) {
			first = t.StartDate
		}
		if last == nil || t.EndDate.After(*last) {
			last = t.EndDate
		}
	}
	if first == nil {
		return Dim("  Nothing scheduled.") + "\n"
	}

	span := int(last.Sub(*first).Hours()/24) + 1
	// One block per day up to ~90 days, then scale down.
	daysPerBlock := 1
	for span/daysPerBlock > 90 {
		daysPerBlock++
	}

	nameWidth := 0
	for _, t := range resp.Tasks {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}
	if nameWidth > 24 {
		nameWidth = 24
	}

	var b strings.Builder
	for _, t := range resp.Tasks {
		label := fmt.Sprintf("  %4d %s ", t.ID, TruncName(t.Name, nameWidth))
		b.WriteString(label)

		if t.StartDate == nil || t.EndDate == nil {
			b.WriteString(StatusStyle(t.Status).Render("·") + " " + Dim(string(t.Status)) + "\n")
			continue
		}

		offset := int(t.StartDate.Sub(*first).Hours()/24) / daysPerBlock
		length := (int(t.EndDate.Sub(*t.StartDate).Hours()/24) / daysPerBlock) + 1
		b.WriteString(strings.Repeat(" ", offset))
		if t.StartDate.Equal(*t.EndDate) && t.Status == domain.TaskScheduled {
			b.WriteString(StylePurple.Render("◆"))
		} else {
			b.WriteString(StatusStyle(t.Status).Render(strings.Repeat(filledBlock, length)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s → %s",
		Dim(fmt.Sprintf("1 block = %dd", daysPerBlock)),
		first.Format(dateLayout), last.Format(dateLayout)))
	b.WriteString("\n")
	return b.String()
}

// FormatWorkload renders the day-by-day role commitments of a run as
// scaled bars.
func FormatWorkload(days []contract.DayWorkload) string {
	if len(days) == 0 {
		return Dim("  No workload recorded.") + "\n"
	}

	maxHours := 0.0
	roleWidth := 0
	for _, d := range days {
		for _, r := range d.Roles {
			if r.Hours > maxHours {
				maxHours = r.Hours
			}
			if len(r.Role) > roleWidth {
				roleWidth = len(r.Role)
			}
		}
	}
	if maxHours <= 0 {
		maxHours = 1
	}

	const barWidth = 24

	var b strings.Builder
	b.WriteString(Header("Workload"))
	b.WriteString("\n")
	for _, d := range days {
		b.WriteString("  " + Bold(d.Date.Format(dateLayout)) + "\n")
		for _, r := range d.Roles {
			filled := int(r.Hours / maxHours * barWidth)
			if filled < 1 {
				filled = 1
			}
			bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)
			b.WriteString(fmt.Sprintf("    %s  %s %s\n",
				TruncName(r.Role, roleWidth), StyleBlue.Render(bar), FormatHours(r.Hours)))
		}
	}
	return b.String()
}

// FormatEstimate renders per-task duration and cost estimates.
func FormatEstimate(resp *contract.EstimateResponse) string {
	var b strings.Builder

	b.WriteString(Header("Estimates"))
	b.WriteString("\n")

	headers := []string{"ID", "Task", "Effort", "Duration", "Cost"}
	rows := make([][]string, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		duration := FormatDays(t.DurationDays)
		if t.Infeasible {
			duration = StyleRed.Render("infeasible")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Name,
			FormatHours(t.EffortHours),
			duration,
			FormatMoney(t.Cost),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total cost: %s\n", Bold(FormatMoney(resp.TotalCost))))
	return b.String()
}
