package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avelarde/planlevel/internal/db"
	"github.com/avelarde/planlevel/internal/planfile"
	"github.com/avelarde/planlevel/internal/repository"
)

type importService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
}

func NewImportService(projects repository.ProjectRepo, uow db.UnitOfWork) ImportService {
	return &importService{projects: projects, uow: uow}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := planfile.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *planfile.Schema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *planfile.Schema) (*ImportResult, error) {
	if errs := planfile.Validate(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	plan, err := planfile.ToDomain(schema)
	if err != nil {
		return nil, fmt.Errorf("converting plan file: %w", err)
	}

	if _, err := s.projects.GetByName(ctx, plan.Project.Name); err == nil {
		return nil, fmt.Errorf("project %q already exists", plan.Project.Name)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	plan.Project.ID = uuid.New().String()
	plan.Project.CreatedAt = now
	plan.Project.UpdatedAt = now

	// The whole plan lands or none of it does.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txRoles := repository.NewSQLiteRoleRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		if err := txProjects.Create(ctx, &plan.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for name := range plan.Roles {
			role := plan.Roles[name]
			if err := txRoles.Upsert(ctx, plan.Project.ID, &role); err != nil {
				return fmt.Errorf("creating role %q: %w", name, err)
			}
		}
		for i := range plan.Tasks {
			task := plan.Tasks[i]
			task.CreatedAt = now
			task.UpdatedAt = now
			if err := txTasks.Create(ctx, plan.Project.ID, &task); err != nil {
				return fmt.Errorf("creating task %d: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:   &plan.Project,
		RoleCount: len(plan.Roles),
		TaskCount: len(plan.Tasks),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
