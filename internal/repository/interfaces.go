package repository

import (
	"context"
	"errors"

	"github.com/avelarde/planlevel/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type RoleRepo interface {
	Upsert(ctx context.Context, projectID string, role *domain.Role) error
	Get(ctx context.Context, projectID, name string) (*domain.Role, error)
	ListByProject(ctx context.Context, projectID string) (domain.RoleMap, error)
	Delete(ctx context.Context, projectID, name string) error
}

type TaskRepo interface {
	Create(ctx context.Context, projectID string, t *domain.Task) error
	GetByID(ctx context.Context, projectID string, id int) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, projectID string, t *domain.Task) error
	// UpdateSchedule writes only the leveling outcome of a task: dates and status.
	UpdateSchedule(ctx context.Context, projectID string, t *domain.Task) error
	// ClearSchedule resets every task of a project back to pending with no dates.
	ClearSchedule(ctx context.Context, projectID string) error
	Delete(ctx context.Context, projectID string, id int) error
}
