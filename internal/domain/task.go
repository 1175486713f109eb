package domain

import "time"

// Epsilon is the tolerance for effort and capacity comparisons.
const Epsilon = 1e-9

// Assignment dedicates a share of one role's own time to one task.
type Assignment struct {
	Role string `json:"role"`
	// AllocationPct is the share of the role's time spent on this task
	// while it is active, in [0,100].
	AllocationPct float64 `json:"allocation"`
}

// Task is an effort-sized unit of work with dependencies on other tasks.
type Task struct {
	ID          int
	Phase       string
	Name        string
	EffortHours float64
	Assignments []Assignment
	DependsOn   []int

	// Set by the scheduling engine.
	StartDate *time.Time
	EndDate   *time.Time
	Status    TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPositiveAllocation reports whether any assignment actually consumes
// role capacity.
func (t *Task) HasPositiveAllocation() bool {
	for _, a := range t.Assignments {
		if a.AllocationPct > 0 {
			return true
		}
	}
	return false
}

// IsMilestone reports whether the task is scheduled instantaneously:
// zero effort, or no assignment that consumes capacity.
func (t *Task) IsMilestone() bool {
	return t.EffortHours <= Epsilon || !t.HasPositiveAllocation()
}
