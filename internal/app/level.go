package app

import "time"

type LevelRequest struct {
	ProjectID string
	// DryRun computes the schedule without persisting task dates.
	DryRun bool
	// IncludeWorkload returns the day-by-day role commitments of the run.
	IncludeWorkload bool
}

func NewLevelRequest(projectID string) LevelRequest {
	return LevelRequest{ProjectID: projectID}
}

type LevelResponse struct {
	GeneratedAt time.Time
	ProjectID   string
	ProjectName string
	Tasks       []TaskSchedule
	Unscheduled []int
	Passes      int
	Workload    []DayWorkload
}

// ProjectEnd returns the latest end date across scheduled tasks, or nil
// when nothing was scheduled.
func (r *LevelResponse) ProjectEnd() *time.Time {
	var end *time.Time
	for i := range r.Tasks {
		if t := r.Tasks[i].EndDate; t != nil && (end == nil || t.After(*end)) {
			end = t
		}
	}
	return end
}

type LevelErrorCode string

const (
	LevelErrProjectNotFound LevelErrorCode = "PROJECT_NOT_FOUND"
	LevelErrNoTasks         LevelErrorCode = "NO_TASKS"
	LevelErrUnknownRole     LevelErrorCode = "UNKNOWN_ROLE"
	LevelErrNoWorkingDays   LevelErrorCode = "NO_WORKING_DAYS"
	LevelErrInternal        LevelErrorCode = "INTERNAL_ERROR"
)

type LevelError struct {
	Code    LevelErrorCode
	Message string
}

func (e *LevelError) Error() string {
	return string(e.Code) + ": " + e.Message
}
