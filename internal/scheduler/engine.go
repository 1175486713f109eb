// Package scheduler levels dependent, effort-sized tasks onto a shared
// pool of rate-limited roles under a working-time calendar. The heuristic
// is deliberately greedy and deterministic: tasks are scanned in ascending
// id order and take the first feasible slot, so re-running on identical
// input reproduces the schedule byte for byte.
package scheduler

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// Input is everything one leveling run reads. The engine is a pure
// function of it; all mutable state is created fresh per run.
type Input struct {
	Tasks        []domain.Task
	Roles        domain.RoleMap
	Calendar     calendar.Calendar
	ProjectStart time.Time
}

// TaskResult is the terminal outcome for one task.
type TaskResult struct {
	ID     int
	Start  *time.Time
	End    *time.Time
	Status domain.TaskStatus
}

// Result is the complete, best-effort outcome of a run: every task gets a
// terminal status, and the ledger snapshot feeds downstream workload
// reporting.
type Result struct {
	Tasks       []TaskResult // ascending id
	Ledger      Ledger
	Unscheduled []int // ascending ids left without a slot
	Passes      int
}

// Level schedules every task it can and reports the rest. Individual task
// failures never abort the run; the only error returned is a calendar so
// misconfigured that no working day is reachable.
func Level(input Input, log zerolog.Logger) (*Result, error) {
	tasks := make([]domain.Task, len(input.Tasks))
	copy(tasks, input.Tasks)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	byID := make(map[int]*domain.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	status := make(map[int]domain.TaskStatus, len(tasks))
	starts := make(map[int]time.Time)
	completed := make(map[int]time.Time)
	ledger := NewLedger()

	// Cycle members, tasks behind a cycle, and tasks referencing unknown
	// ids can never become ready; classify them before burning passes.
	unresolved := FindUnresolved(tasks)

	var unscheduled []int
	for _, t := range tasks {
		if unresolved[t.ID] {
			status[t.ID] = domain.TaskUnresolvedDependency
			continue
		}
		status[t.ID] = domain.TaskPending
		unscheduled = append(unscheduled, t.ID)
	}
	if len(unresolved) > 0 {
		log.Warn().Int("tasks", len(unresolved)).Msg("dependency pre-check left tasks unresolvable")
	}

	maxPasses := 3*len(tasks) + 10
	passes := 0

	for passes < maxPasses && len(unscheduled) > 0 {
		passes++
		progress := false

		remaining := unscheduled[:0:0]
		for _, id := range unscheduled {
			task := byID[id]

			start, ready, err := EarliestStart(*task, completed, input.ProjectStart, input.Calendar)
			if err != nil {
				return nil, err
			}
			if !ready {
				remaining = append(remaining, id)
				continue
			}

			if task.IsMilestone() {
				// Milestones consume no capacity and complete on
				// their earliest feasible date.
				starts[id] = start
				completed[id] = start
				status[id] = domain.TaskScheduled
				progress = true
				log.Info().Int("task", id).Str("date", start.Format("2006-01-02")).Msg("milestone placed")
				continue
			}

			sim, err := SimulateTask(*task, start, ledger, input.Roles, input.Calendar, log)
			if err != nil {
				return nil, err
			}
			if !sim.Completed {
				status[id] = domain.TaskResourceExhausted
				remaining = append(remaining, id)
				continue
			}

			ledger.MergeLog(sim.Log)
			starts[id] = sim.Start
			completed[id] = sim.End
			status[id] = domain.TaskScheduled
			progress = true
			log.Info().
				Int("task", id).
				Str("start", sim.Start.Format("2006-01-02")).
				Str("end", sim.End.Format("2006-01-02")).
				Msg("task scheduled")
		}
		unscheduled = remaining

		if !progress {
			// The ledger only grows within a run, so a pass with zero
			// net progress cannot be followed by a better one.
			break
		}
	}

	// Tasks that never became ready were waiting on a task that itself
	// failed; without a dependency end date they share its fate.
	for _, id := range unscheduled {
		if status[id] == domain.TaskPending {
			status[id] = domain.TaskUnresolvedDependency
		}
	}

	result := &Result{Ledger: ledger, Passes: passes}
	for _, t := range tasks {
		tr := TaskResult{ID: t.ID, Status: status[t.ID]}
		if tr.Status == domain.TaskScheduled {
			s := starts[t.ID]
			e := completed[t.ID]
			tr.Start = &s
			tr.End = &e
		} else {
			result.Unscheduled = append(result.Unscheduled, t.ID)
		}
		result.Tasks = append(result.Tasks, tr)
	}

	log.Info().
		Int("scheduled", len(result.Tasks)-len(result.Unscheduled)).
		Int("unscheduled", len(result.Unscheduled)).
		Int("passes", passes).
		Msg("leveling run finished")

	return result, nil
}
