package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// simulationHorizonDays bounds the day-by-day search for a single task.
// A task that cannot finish within three calendar years of its candidate
// start is reported as resource-exhausted.
const simulationHorizonDays = 1095

// Simulation is the outcome of forward-simulating one task. Nothing in it
// touches shared state: the log is committed to the ledger by the caller,
// and only when Completed is true.
type Simulation struct {
	Completed bool
	Start     time.Time
	End       time.Time
	Log       []DayLog
}

// SimulateTask walks forward from the candidate date consuming the task's
// effort against the capacity each day's negotiation grants. On success
// the returned log covers exactly the consumed hours; on horizon
// exhaustion the log is discarded by contract — a task that did not fully
// complete must never leak partial consumption into the ledger.
func SimulateTask(
	task domain.Task,
	candidate time.Time,
	ledger Ledger,
	roles domain.RoleMap,
	cal calendar.Calendar,
	log zerolog.Logger,
) (Simulation, error) {
	remaining := task.EffortHours
	date := candidate
	horizon := candidate.AddDate(0, 0, simulationHorizonDays)

	var sim Simulation
	started := false

	for !date.After(horizon) {
		grant := DailyCapacity(date, task.Assignments, ledger, roles, cal)
		if grant.CanProgress && grant.Total > domain.Epsilon {
			consume := remaining
			if consume > grant.Total {
				consume = grant.Total
			}

			perRole := make(map[string]float64, len(grant.Granted))
			for role, granted := range grant.Granted {
				if granted <= 0 {
					continue
				}
				perRole[role] = consume * granted / grant.Total
			}
			sim.Log = append(sim.Log, DayLog{Date: date, PerRole: perRole})

			if !started {
				sim.Start = date
				started = true
			}
			sim.End = date
			remaining -= consume

			log.Debug().
				Int("task", task.ID).
				Str("date", date.Format("2006-01-02")).
				Float64("consumed", consume).
				Float64("remaining", remaining).
				Msg("simulated day")
		}

		if remaining <= domain.Epsilon && started {
			sim.Completed = true
			return sim, nil
		}

		next, err := cal.NextWorkingDay(date.AddDate(0, 0, 1))
		if err != nil {
			return Simulation{}, err
		}
		date = next
	}

	log.Debug().
		Int("task", task.ID).
		Str("candidate", candidate.Format("2006-01-02")).
		Msg("simulation horizon exhausted")
	return Simulation{}, nil
}
