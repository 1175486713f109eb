package scheduler

import (
	"time"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// CapacityGrant is the outcome of negotiating one task's capacity for one
// day: the hours each assigned role can still contribute after what the
// ledger already committed to other tasks.
type CapacityGrant struct {
	// Granted maps role name to the hours granted for this task today.
	Granted map[string]float64
	// Total is the sum of all grants.
	Total float64
	// CanProgress is true when the task can consume effort today, or
	// when it needs no capacity at all (milestone-like).
	CanProgress bool
}

// DailyCapacity negotiates how many person-hours each assigned role can
// give one task on one day. A role is never granted more than its
// remaining general capacity for the day, regardless of how many tasks
// request it; that alone enforces the no-over-allocation invariant.
func DailyCapacity(
	date time.Time,
	assignments []domain.Assignment,
	ledger Ledger,
	roles domain.RoleMap,
	cal calendar.Calendar,
) CapacityGrant {
	grant := CapacityGrant{Granted: map[string]float64{}}
	dayHours := cal.WorkingHours(date)

	anyPositive := false
	for _, a := range assignments {
		if a.AllocationPct <= 0 {
			continue
		}
		anyPositive = true

		role, ok := roles[a.Role]
		if !ok {
			continue
		}

		general := dayHours * role.AvailabilityPct / 100
		remaining := general - ledger.Committed(date, a.Role)
		if remaining < 0 {
			remaining = 0
		}
		requested := general * a.AllocationPct / 100

		granted := requested
		if granted > remaining {
			granted = remaining
		}
		if granted < 0 {
			granted = 0
		}

		grant.Granted[a.Role] += granted
		grant.Total += granted
	}

	grant.CanProgress = grant.Total > domain.Epsilon || !anyPositive
	return grant
}
