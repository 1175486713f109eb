package service

import (
	"context"

	"github.com/avelarde/planlevel/internal/planfile"
	"github.com/avelarde/planlevel/internal/repository"
)

type exportService struct {
	projects repository.ProjectRepo
	roles    repository.RoleRepo
	tasks    repository.TaskRepo
}

func NewExportService(projects repository.ProjectRepo, roles repository.RoleRepo, tasks repository.TaskRepo) ExportService {
	return &exportService{projects: projects, roles: roles, tasks: tasks}
}

func (s *exportService) ExportPlan(ctx context.Context, projectID string) (*planfile.Schema, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	plan := &planfile.Plan{Project: *project, Roles: roles}
	for _, t := range tasks {
		plan.Tasks = append(plan.Tasks, *t)
	}
	return planfile.FromDomain(plan), nil
}
