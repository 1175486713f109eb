package app

import (
	"context"

	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/planfile"
)

type LevelUseCase interface {
	Level(ctx context.Context, req LevelRequest) (*LevelResponse, error)
}

type EstimateUseCase interface {
	Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error)
}

type ImportResult struct {
	Project   *domain.Project
	RoleCount int
	TaskCount int
}

type ImportUseCase interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *planfile.Schema) (*ImportResult, error)
}

type ExportUseCase interface {
	ExportPlan(ctx context.Context, projectID string) (*planfile.Schema, error)
}
