package app

import (
	"time"

	"github.com/avelarde/planlevel/internal/domain"
)

// TaskSchedule is the per-task outcome of a leveling run.
type TaskSchedule struct {
	ID        int
	Phase     string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Status    domain.TaskStatus
}

// RoleHours is one role's booked hours on a single day.
type RoleHours struct {
	Role  string
	Hours float64
}

// DayWorkload is the per-role commitment of one working day, in the
// deterministic order the ledger reports it.
type DayWorkload struct {
	Date  time.Time
	Roles []RoleHours
}
