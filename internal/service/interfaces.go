package service

import (
	"context"

	"github.com/avelarde/planlevel/internal/contract"
	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/planfile"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve finds a project by id or, failing that, by name.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type RoleService interface {
	Upsert(ctx context.Context, projectID string, role *domain.Role) error
	Get(ctx context.Context, projectID, name string) (*domain.Role, error)
	ListByProject(ctx context.Context, projectID string) (domain.RoleMap, error)
	Delete(ctx context.Context, projectID, name string) error
}

type TaskService interface {
	Create(ctx context.Context, projectID string, t *domain.Task) error
	GetByID(ctx context.Context, projectID string, id int) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, projectID string, t *domain.Task) error
	Delete(ctx context.Context, projectID string, id int) error
}

// ImportResult holds the outcome of a plan import.
type ImportResult = contract.ImportResult

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *planfile.Schema) (*ImportResult, error)
}

type ExportService interface {
	ExportPlan(ctx context.Context, projectID string) (*planfile.Schema, error)
}

type EstimateService interface {
	Estimate(ctx context.Context, req contract.EstimateRequest) (*contract.EstimateResponse, error)
}

type LevelService interface {
	Level(ctx context.Context, req contract.LevelRequest) (*contract.LevelResponse, error)
}
