package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/domain"
)

func TestSimulateTask_SingleDayFit(t *testing.T) {
	task := domain.Task{
		ID:          1,
		EffortHours: 8,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 100}},
	}

	sim, err := SimulateTask(task, monday, NewLedger(), singleRole("Dev", 100), monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	assert.Equal(t, monday, sim.Start)
	assert.Equal(t, monday, sim.End)
	require.Len(t, sim.Log, 1)
	assert.InDelta(t, 8.0, sim.Log[0].PerRole["Dev"], 1e-9)
}

func TestSimulateTask_PartialCapacitySpansDays(t *testing.T) {
	// 50% availability on an 8h calendar gives a 4h/day effective cap:
	// 12h of effort takes three consecutive working days.
	task := domain.Task{
		ID:          1,
		EffortHours: 12,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 100}},
	}

	sim, err := SimulateTask(task, monday, NewLedger(), singleRole("Dev", 50), monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	assert.Equal(t, monday, sim.Start)
	assert.Equal(t, monday.AddDate(0, 0, 2), sim.End)
	require.Len(t, sim.Log, 3)
	for _, day := range sim.Log {
		assert.InDelta(t, 4.0, day.PerRole["Dev"], 1e-9)
	}
}

func TestSimulateTask_SkipsFullyBookedDays(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(monday, "Dev", 8)

	task := domain.Task{
		ID:          2,
		EffortHours: 8,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 100}},
	}

	sim, err := SimulateTask(task, monday, ledger, singleRole("Dev", 100), monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, tuesday, sim.Start, "start records the first day with nonzero consumption")
	assert.Equal(t, tuesday, sim.End)
}

func TestSimulateTask_ConsumesLeftoverThenMoves(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(monday, "Dev", 6)

	task := domain.Task{
		ID:          2,
		EffortHours: 6,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 100}},
	}

	sim, err := SimulateTask(task, monday, ledger, singleRole("Dev", 100), monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	assert.Equal(t, monday, sim.Start)
	assert.Equal(t, monday.AddDate(0, 0, 1), sim.End)
	require.Len(t, sim.Log, 2)
	assert.InDelta(t, 2.0, sim.Log[0].PerRole["Dev"], 1e-9)
	assert.InDelta(t, 4.0, sim.Log[1].PerRole["Dev"], 1e-9)
}

func TestSimulateTask_SplitsProportionally(t *testing.T) {
	roles := domain.RoleMap{
		"Lead": {Name: "Lead", AvailabilityPct: 100},
		"Eng":  {Name: "Eng", AvailabilityPct: 100},
	}
	task := domain.Task{
		ID:          1,
		EffortHours: 4,
		Assignments: []domain.Assignment{
			{Role: "Lead", AllocationPct: 25},
			{Role: "Eng", AllocationPct: 75},
		},
	}

	sim, err := SimulateTask(task, monday, NewLedger(), roles, monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	// Grants are 2h and 6h; 4h consumed splits 1:3.
	require.Len(t, sim.Log, 1)
	assert.InDelta(t, 1.0, sim.Log[0].PerRole["Lead"], 1e-9)
	assert.InDelta(t, 3.0, sim.Log[0].PerRole["Eng"], 1e-9)
}

func TestSimulateTask_HorizonExhaustionDiscardsLog(t *testing.T) {
	// Zero availability can never progress; the simulation must give up
	// without leaking any partial consumption.
	task := domain.Task{
		ID:          1,
		EffortHours: 8,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 100}},
	}

	sim, err := SimulateTask(task, monday, NewLedger(), singleRole("Dev", 0), monFri8(), zerolog.Nop())
	require.NoError(t, err)

	assert.False(t, sim.Completed)
	assert.Empty(t, sim.Log)
	assert.True(t, sim.Start.IsZero())
}

func TestSimulateTask_WeekendGapSplitsLog(t *testing.T) {
	// 12h at 4h/day starting Thursday: Thu, Fri, then Monday.
	thursday := domain.Date(2025, time.June, 5)
	task := domain.Task{
		ID:          1,
		EffortHours: 12,
		Assignments: []domain.Assignment{{Role: "Dev", AllocationPct: 50}},
	}

	sim, err := SimulateTask(task, thursday, NewLedger(), singleRole("Dev", 100), monFri8(), zerolog.Nop())
	require.NoError(t, err)
	require.True(t, sim.Completed)

	require.Len(t, sim.Log, 3)
	assert.Equal(t, thursday, sim.Log[0].Date)
	assert.Equal(t, thursday.AddDate(0, 0, 1), sim.Log[1].Date)
	assert.Equal(t, thursday.AddDate(0, 0, 4), sim.Log[2].Date, "weekend skipped")
	assert.Equal(t, thursday.AddDate(0, 0, 4), sim.End)
}
