package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/contract"
	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/repository"
	"github.com/avelarde/planlevel/internal/scheduler"
)

type estimateService struct {
	projects repository.ProjectRepo
	roles    repository.RoleRepo
	tasks    repository.TaskRepo
}

func NewEstimateService(projects repository.ProjectRepo, roles repository.RoleRepo, tasks repository.TaskRepo) EstimateService {
	return &estimateService{projects: projects, roles: roles, tasks: tasks}
}

func (s *estimateService) Estimate(ctx context.Context, req contract.EstimateRequest) (*contract.EstimateResponse, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.EstimateError{Code: contract.EstimateErrProjectNotFound, Message: req.ProjectID}
		}
		return nil, &contract.EstimateError{Code: contract.EstimateErrInternal, Message: err.Error()}
	}
	roles, err := s.roles.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, &contract.EstimateError{Code: contract.EstimateErrInternal, Message: err.Error()}
	}
	tasks, err := s.tasks.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, &contract.EstimateError{Code: contract.EstimateErrInternal, Message: err.Error()}
	}

	if len(req.TaskIDs) > 0 {
		byID := make(map[int]*domain.Task, len(tasks))
		for _, t := range tasks {
			byID[t.ID] = t
		}
		picked := make([]*domain.Task, 0, len(req.TaskIDs))
		for _, id := range req.TaskIDs {
			t, ok := byID[id]
			if !ok {
				return nil, &contract.EstimateError{
					Code:    contract.EstimateErrTaskNotFound,
					Message: fmt.Sprintf("task %d", id),
				}
			}
			picked = append(picked, t)
		}
		tasks = picked
	}

	cal := calendar.New(project.Calendar)
	resp := &contract.EstimateResponse{ProjectID: req.ProjectID}
	for _, t := range tasks {
		days := scheduler.EstimateDays(*t, roles, cal)
		est := contract.TaskEstimate{
			ID:           t.ID,
			Name:         t.Name,
			EffortHours:  t.EffortHours,
			DurationDays: days,
			Infeasible:   days == scheduler.InfeasibleDays && !t.IsMilestone(),
			Cost:         taskCost(*t, roles),
		}
		resp.Tasks = append(resp.Tasks, est)
		resp.TotalCost += est.Cost
	}
	return resp, nil
}

// taskCost prices a task's effort at the assigned roles' hourly rates.
// Each role carries a share of the effort proportional to its allocation.
func taskCost(t domain.Task, roles domain.RoleMap) float64 {
	var totalAlloc float64
	for _, a := range t.Assignments {
		if a.AllocationPct > 0 {
			totalAlloc += a.AllocationPct
		}
	}
	if totalAlloc <= domain.Epsilon {
		return 0
	}
	var cost float64
	for _, a := range t.Assignments {
		if a.AllocationPct <= 0 {
			continue
		}
		role, ok := roles[a.Role]
		if !ok {
			continue
		}
		cost += t.EffortHours * (a.AllocationPct / totalAlloc) * role.HourlyRate
	}
	return cost
}
