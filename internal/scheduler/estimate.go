package scheduler

import (
	"math"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// InfeasibleDays is the sentinel estimate for a task whose assignments
// yield no throughput (all-zero allocations or a degenerate calendar).
const InfeasibleDays = 9999.0

// EstimateDays returns an advisory duration estimate in working days for
// display before leveling. It divides the task's effort by the combined
// daily throughput of its assignments, rounded up to the nearest half day
// with a floor of half a day. The leveling engine never reads this value.
func EstimateDays(task domain.Task, roles domain.RoleMap, cal calendar.Calendar) float64 {
	avg := cal.AvgDailyCapacity()

	var throughput float64
	for _, a := range task.Assignments {
		if a.AllocationPct <= 0 {
			continue
		}
		role, ok := roles[a.Role]
		if !ok {
			continue
		}
		throughput += avg * role.AvailabilityPct / 100 * a.AllocationPct / 100
	}

	if throughput <= domain.Epsilon {
		return InfeasibleDays
	}

	days := math.Ceil(task.EffortHours/throughput*2) / 2
	if days < 0.5 {
		days = 0.5
	}
	return days
}
