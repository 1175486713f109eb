package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelarde/planlevel/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = domain.DayOf(d)
	}
}

func WithCalendar(cal domain.Calendar) ProjectOption {
	return func(p *domain.Project) {
		p.Calendar = cal
	}
}

// NewTestProject builds a project starting Monday 2025-06-02 on the
// standard week unless options say otherwise.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: domain.Date(2025, time.June, 2),
		Calendar:  domain.NewCalendar(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Role options
type RoleOption func(*domain.Role)

func WithAvailability(pct float64) RoleOption {
	return func(r *domain.Role) {
		r.AvailabilityPct = pct
	}
}

func WithHourlyRate(rate float64) RoleOption {
	return func(r *domain.Role) {
		r.HourlyRate = rate
	}
}

func NewTestRole(name string, opts ...RoleOption) *domain.Role {
	r := &domain.Role{
		Name:            name,
		AvailabilityPct: 100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Task options
type TaskOption func(*domain.Task)

func WithPhase(phase string) TaskOption {
	return func(t *domain.Task) {
		t.Phase = phase
	}
}

func WithEffort(hours float64) TaskOption {
	return func(t *domain.Task) {
		t.EffortHours = hours
	}
}

func WithAssignment(role string, allocationPct float64) TaskOption {
	return func(t *domain.Task) {
		t.Assignments = append(t.Assignments, domain.Assignment{
			Role:          role,
			AllocationPct: allocationPct,
		})
	}
}

func WithDependencies(ids ...int) TaskOption {
	return func(t *domain.Task) {
		t.DependsOn = append(t.DependsOn, ids...)
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func NewTestTask(id int, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        id,
		Name:      name,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
