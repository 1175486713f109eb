package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// monFri8 is a flat Mon-Fri 8h calendar used across scheduler tests.
func monFri8() calendar.Calendar {
	return calendar.New(domain.Calendar{
		DefaultWeek: domain.WeekHours{
			time.Monday: 8, time.Tuesday: 8, time.Wednesday: 8,
			time.Thursday: 8, time.Friday: 8,
		},
		MonthlyOverrides: map[time.Month]domain.WeekHours{},
		ExcludeWeekends:  true,
	})
}

func singleRole(name string, availabilityPct float64) domain.RoleMap {
	return domain.RoleMap{name: {Name: name, AvailabilityPct: availabilityPct}}
}

var monday = domain.Date(2025, time.June, 2)

func TestDailyCapacity_FullAvailabilityGrantsRequested(t *testing.T) {
	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 100}},
		NewLedger(),
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.True(t, grant.CanProgress)
	assert.InDelta(t, 8.0, grant.Granted["Dev"], 1e-9)
	assert.InDelta(t, 8.0, grant.Total, 1e-9)
}

func TestDailyCapacity_AllocationScalesRequest(t *testing.T) {
	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 25}},
		NewLedger(),
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.InDelta(t, 2.0, grant.Granted["Dev"], 1e-9)
}

func TestDailyCapacity_AvailabilityCapsGeneralCapacity(t *testing.T) {
	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 100}},
		NewLedger(),
		singleRole("Dev", 50),
		monFri8(),
	)

	assert.InDelta(t, 4.0, grant.Total, 1e-9)
}

func TestDailyCapacity_LedgerCommitmentReducesGrant(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(monday, "Dev", 6)

	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 100}},
		ledger,
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.InDelta(t, 2.0, grant.Granted["Dev"], 1e-9, "only the uncommitted remainder is granted")
	assert.True(t, grant.CanProgress)
}

func TestDailyCapacity_FullyBookedRoleBlocksProgress(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(monday, "Dev", 8)

	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 100}},
		ledger,
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.Equal(t, 0.0, grant.Total)
	assert.False(t, grant.CanProgress)
}

func TestDailyCapacity_OverCommittedLedgerNeverGrantsNegative(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(monday, "Dev", 12) // beyond the 8h day

	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 100}},
		ledger,
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.Equal(t, 0.0, grant.Granted["Dev"])
}

func TestDailyCapacity_ZeroAllocationIsMilestoneLike(t *testing.T) {
	grant := DailyCapacity(
		monday,
		[]domain.Assignment{{Role: "Dev", AllocationPct: 0}},
		NewLedger(),
		singleRole("Dev", 100),
		monFri8(),
	)

	assert.Equal(t, 0.0, grant.Total)
	assert.True(t, grant.CanProgress, "a task with no positive allocation never needs capacity")
}

func TestDailyCapacity_SplitsAcrossRoles(t *testing.T) {
	roles := domain.RoleMap{
		"Lead": {Name: "Lead", AvailabilityPct: 100},
		"Eng":  {Name: "Eng", AvailabilityPct: 100},
	}

	grant := DailyCapacity(
		monday,
		[]domain.Assignment{
			{Role: "Lead", AllocationPct: 30},
			{Role: "Eng", AllocationPct: 70},
		},
		NewLedger(),
		roles,
		monFri8(),
	)

	assert.InDelta(t, 2.4, grant.Granted["Lead"], 1e-9)
	assert.InDelta(t, 5.6, grant.Granted["Eng"], 1e-9)
	assert.InDelta(t, 8.0, grant.Total, 1e-9)
}
