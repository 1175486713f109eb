package service

import (
	"context"
	"fmt"

	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/repository"
)

type roleService struct {
	roles repository.RoleRepo
	tasks repository.TaskRepo
}

func NewRoleService(roles repository.RoleRepo, tasks repository.TaskRepo) RoleService {
	return &roleService{roles: roles, tasks: tasks}
}

func (s *roleService) Upsert(ctx context.Context, projectID string, role *domain.Role) error {
	if role.Name == "" {
		return fmt.Errorf("role name is required")
	}
	if role.AvailabilityPct < 0 || role.AvailabilityPct > 100 {
		return fmt.Errorf("availability %v out of range [0,100]", role.AvailabilityPct)
	}
	if role.HourlyRate < 0 {
		return fmt.Errorf("hourly rate must not be negative")
	}
	return s.roles.Upsert(ctx, projectID, role)
}

func (s *roleService) Get(ctx context.Context, projectID, name string) (*domain.Role, error) {
	return s.roles.Get(ctx, projectID, name)
}

func (s *roleService) ListByProject(ctx context.Context, projectID string) (domain.RoleMap, error) {
	return s.roles.ListByProject(ctx, projectID)
}

func (s *roleService) Delete(ctx context.Context, projectID, name string) error {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		for _, a := range t.Assignments {
			if a.Role == name {
				return fmt.Errorf("role %q is assigned to task %d (%s)", name, t.ID, t.Name)
			}
		}
	}
	return s.roles.Delete(ctx, projectID, name)
}
