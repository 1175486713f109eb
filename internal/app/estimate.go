package app

type EstimateRequest struct {
	ProjectID string
	// TaskIDs limits the estimate to specific tasks; empty means all.
	TaskIDs []int
}

// TaskEstimate is the calendar-free duration estimate of one task.
type TaskEstimate struct {
	ID           int
	Name         string
	EffortHours  float64
	DurationDays float64
	// Infeasible marks tasks whose combined throughput is zero.
	Infeasible bool
	// Cost is the effort priced at the assigned roles' hourly rates.
	Cost float64
}

type EstimateResponse struct {
	ProjectID string
	Tasks     []TaskEstimate
	TotalCost float64
}

type EstimateErrorCode string

const (
	EstimateErrProjectNotFound EstimateErrorCode = "PROJECT_NOT_FOUND"
	EstimateErrTaskNotFound    EstimateErrorCode = "TASK_NOT_FOUND"
	EstimateErrInternal        EstimateErrorCode = "INTERNAL_ERROR"
)

type EstimateError struct {
	Code    EstimateErrorCode
	Message string
}

func (e *EstimateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
