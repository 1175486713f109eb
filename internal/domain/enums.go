package domain

// TaskStatus is the per-task outcome of a leveling run.
type TaskStatus string

const (
	// TaskPending marks a task that has not been through a leveling run yet.
	TaskPending TaskStatus = "pending"
	// TaskScheduled marks a task with committed start and end dates.
	TaskScheduled TaskStatus = "scheduled"
	// TaskUnresolvedDependency marks a task that never became ready:
	// it sits on a dependency cycle or behind one.
	TaskUnresolvedDependency TaskStatus = "unresolved_dependency"
	// TaskResourceExhausted marks a task that became ready but found no
	// feasible slot within the simulation horizon.
	TaskResourceExhausted TaskStatus = "resource_exhausted"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "scheduled": true,
	"unresolved_dependency": true, "resource_exhausted": true,
}
