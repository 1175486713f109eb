package scheduler

import (
	"time"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/domain"
)

// EarliestStart computes the first working day a task could start given
// the end dates of already-scheduled tasks. A task with no dependencies
// starts on the first working day at or after the project default start.
// ready is false when some dependency has no recorded end date yet; the
// caller retries the task on a later pass.
func EarliestStart(
	task domain.Task,
	completed map[int]time.Time,
	projectStart time.Time,
	cal calendar.Calendar,
) (start time.Time, ready bool, err error) {
	earliest := domain.DayOf(projectStart)

	var latestFinish time.Time
	for _, dep := range task.DependsOn {
		end, ok := completed[dep]
		if !ok {
			return time.Time{}, false, nil
		}
		if end.After(latestFinish) {
			latestFinish = end
		}
	}
	if len(task.DependsOn) > 0 {
		earliest = latestFinish.AddDate(0, 0, 1)
	}

	day, err := cal.NextWorkingDay(earliest)
	if err != nil {
		return time.Time{}, false, err
	}
	return day, true, nil
}
