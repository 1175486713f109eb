package domain

import "time"

// Project groups the calendar, the role pool and the task list that a
// leveling run operates on.
type Project struct {
	ID        string
	Name      string
	StartDate time.Time
	Calendar  Calendar

	CreatedAt time.Time
	UpdatedAt time.Time
}
