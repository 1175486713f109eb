package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/contract"
	"github.com/avelarde/planlevel/internal/db"
	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/repository"
	"github.com/avelarde/planlevel/internal/scheduler"
)

type levelService struct {
	projects repository.ProjectRepo
	roles    repository.RoleRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	log      zerolog.Logger
}

func NewLevelService(
	projects repository.ProjectRepo,
	roles repository.RoleRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	log zerolog.Logger,
) LevelService {
	return &levelService{projects: projects, roles: roles, tasks: tasks, uow: uow, log: log}
}

func (s *levelService) Level(ctx context.Context, req contract.LevelRequest) (*contract.LevelResponse, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.LevelError{Code: contract.LevelErrProjectNotFound, Message: req.ProjectID}
		}
		return nil, &contract.LevelError{Code: contract.LevelErrInternal, Message: err.Error()}
	}
	roles, err := s.roles.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, &contract.LevelError{Code: contract.LevelErrInternal, Message: err.Error()}
	}
	tasks, err := s.tasks.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, &contract.LevelError{Code: contract.LevelErrInternal, Message: err.Error()}
	}
	if len(tasks) == 0 {
		return nil, &contract.LevelError{Code: contract.LevelErrNoTasks, Message: project.Name}
	}

	// Assignments referencing roles the project never defined are a data
	// problem, not a scheduling outcome; fail before the run starts.
	for _, t := range tasks {
		for _, a := range t.Assignments {
			if _, ok := roles[a.Role]; !ok {
				return nil, &contract.LevelError{
					Code:    contract.LevelErrUnknownRole,
					Message: fmt.Sprintf("task %d references role %q", t.ID, a.Role),
				}
			}
		}
	}

	input := scheduler.Input{
		Roles:        roles,
		Calendar:     calendar.New(project.Calendar),
		ProjectStart: project.StartDate,
	}
	for _, t := range tasks {
		input.Tasks = append(input.Tasks, *t)
	}

	runLog := s.log.With().Str("project", project.Name).Logger()
	result, err := scheduler.Level(input, runLog)
	if err != nil {
		if errors.Is(err, calendar.ErrNoWorkingDays) {
			return nil, &contract.LevelError{Code: contract.LevelErrNoWorkingDays, Message: err.Error()}
		}
		return nil, &contract.LevelError{Code: contract.LevelErrInternal, Message: err.Error()}
	}

	if !req.DryRun {
		if err := s.persist(ctx, req.ProjectID, result); err != nil {
			return nil, &contract.LevelError{Code: contract.LevelErrInternal, Message: err.Error()}
		}
	}

	return buildLevelResponse(project, tasks, result, req.IncludeWorkload), nil
}

// persist writes the run's outcome for every task in one transaction.
func (s *levelService) persist(ctx context.Context, projectID string, result *scheduler.Result) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, tr := range result.Tasks {
			task := domain.Task{
				ID:        tr.ID,
				StartDate: tr.Start,
				EndDate:   tr.End,
				Status:    tr.Status,
			}
			if err := txTasks.UpdateSchedule(ctx, projectID, &task); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildLevelResponse(project *domain.Project, tasks []*domain.Task, result *scheduler.Result, includeWorkload bool) *contract.LevelResponse {
	byID := make(map[int]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	resp := &contract.LevelResponse{
		GeneratedAt: time.Now().UTC(),
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Unscheduled: result.Unscheduled,
		Passes:      result.Passes,
	}
	for _, tr := range result.Tasks {
		sched := contract.TaskSchedule{
			ID:        tr.ID,
			StartDate: tr.Start,
			EndDate:   tr.End,
			Status:    tr.Status,
		}
		if t, ok := byID[tr.ID]; ok {
			sched.Phase = t.Phase
			sched.Name = t.Name
		}
		resp.Tasks = append(resp.Tasks, sched)
	}

	if includeWorkload {
		for _, day := range result.Ledger.Snapshot() {
			workload := contract.DayWorkload{Date: day.Date}
			for _, entry := range day.Roles {
				workload.Roles = append(workload.Roles, contract.RoleHours{Role: entry.Role, Hours: entry.Hours})
			}
			resp.Workload = append(resp.Workload, workload)
		}
	}
	return resp
}
