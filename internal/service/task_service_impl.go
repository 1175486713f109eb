package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	roles repository.RoleRepo
}

func NewTaskService(tasks repository.TaskRepo, roles repository.RoleRepo) TaskService {
	return &taskService{tasks: tasks, roles: roles}
}

func (s *taskService) Create(ctx context.Context, projectID string, t *domain.Task) error {
	if err := s.validate(ctx, projectID, t); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	return s.tasks.Create(ctx, projectID, t)
}

func (s *taskService) GetByID(ctx context.Context, projectID string, id int) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, projectID, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, projectID string, t *domain.Task) error {
	if err := s.validate(ctx, projectID, t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, projectID, t)
}

func (s *taskService) Delete(ctx context.Context, projectID string, id int) error {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if dep == id {
				return fmt.Errorf("task %d (%s) depends on task %d", t.ID, t.Name, id)
			}
		}
	}
	return s.tasks.Delete(ctx, projectID, id)
}

func (s *taskService) validate(ctx context.Context, projectID string, t *domain.Task) error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if t.EffortHours < 0 {
		return fmt.Errorf("effort hours must not be negative")
	}
	roles, err := s.roles.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(t.Assignments))
	for _, a := range t.Assignments {
		if _, ok := roles[a.Role]; !ok {
			return fmt.Errorf("unknown role %q", a.Role)
		}
		if seen[a.Role] {
			return fmt.Errorf("role %q assigned more than once", a.Role)
		}
		seen[a.Role] = true
		if a.AllocationPct < 0 || a.AllocationPct > 100 {
			return fmt.Errorf("allocation %v for role %q out of range [0,100]", a.AllocationPct, a.Role)
		}
	}
	for _, dep := range t.DependsOn {
		if dep == t.ID {
			return fmt.Errorf("task %d depends on itself", t.ID)
		}
	}
	return nil
}
