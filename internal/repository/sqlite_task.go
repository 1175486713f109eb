package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelarde/planlevel/internal/db"
	"github.com/avelarde/planlevel/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Assignments and
// dependencies are stored as JSON columns in the shape the plan files use, so
// a task row round-trips without a join fan-out.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

const taskColumns = `project_id, id, phase, name, effort_hours, assignments, dependencies, start_date, end_date, status, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, projectID string, t *domain.Task) error {
	assignments, deps, err := encodeTaskColumns(t)
	if err != nil {
		return err
	}
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		projectID,
		t.ID,
		t.Phase,
		t.Name,
		t.EffortHours,
		assignments,
		deps,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, projectID string, id int) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, projectID, id))
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, projectID string, t *domain.Task) error {
	assignments, deps, err := encodeTaskColumns(t)
	if err != nil {
		return err
	}
	query := `UPDATE tasks SET phase = ?, name = ?, effort_hours = ?, assignments = ?, dependencies = ?,
		start_date = ?, end_date = ?, status = ?, updated_at = ?
		WHERE project_id = ? AND id = ?`
	_, err = r.db.ExecContext(ctx, query,
		t.Phase,
		t.Name,
		t.EffortHours,
		assignments,
		deps,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		projectID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateSchedule(ctx context.Context, projectID string, t *domain.Task) error {
	query := `UPDATE tasks SET start_date = ?, end_date = ?, status = ?, updated_at = ?
		WHERE project_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		nowUTC(),
		projectID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task schedule: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ClearSchedule(ctx context.Context, projectID string) error {
	query := `UPDATE tasks SET start_date = NULL, end_date = NULL, status = 'pending', updated_at = ?
		WHERE project_id = ?`
	_, err := r.db.ExecContext(ctx, query, nowUTC(), projectID)
	if err != nil {
		return fmt.Errorf("clearing task schedules: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, projectID string, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ? AND id = ?`, projectID, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var projectID, assignmentsJSON, depsJSON, statusStr, createdAtStr, updatedAtStr string
	var startDateStr, endDateStr sql.NullString

	err := row.Scan(
		&projectID, &t.ID, &t.Phase, &t.Name, &t.EffortHours,
		&assignmentsJSON, &depsJSON,
		&startDateStr, &endDateStr,
		&statusStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	if err := unmarshalColumn(assignmentsJSON, &t.Assignments); err != nil {
		return nil, fmt.Errorf("decoding assignments: %w", err)
	}
	if err := unmarshalColumn(depsJSON, &t.DependsOn); err != nil {
		return nil, fmt.Errorf("decoding dependencies: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.StartDate = parseNullableTime(startDateStr, dateLayout)
	t.EndDate = parseNullableTime(endDateStr, dateLayout)

	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &t, nil
}

// encodeTaskColumns serializes the assignments and dependencies JSON columns.
func encodeTaskColumns(t *domain.Task) (assignments, deps string, err error) {
	if t.Assignments == nil {
		assignments = "[]"
	} else if assignments, err = marshalColumn(t.Assignments); err != nil {
		return "", "", fmt.Errorf("encoding assignments: %w", err)
	}
	if t.DependsOn == nil {
		deps = "[]"
	} else if deps, err = marshalColumn(t.DependsOn); err != nil {
		return "", "", fmt.Errorf("encoding dependencies: %w", err)
	}
	return assignments, deps, nil
}
