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

// SQLiteProjectRepo implements ProjectRepo on a SQLite database. The calendar
// travels in two JSON columns so a project row carries its full working-time
// configuration.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

const projectColumns = `id, name, start_date, default_week, monthly_overrides, exclude_weekends, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	week, overrides, err := encodeCalendar(p.Calendar)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.StartDate.Format(dateLayout),
		week,
		overrides,
		boolToInt(p.Calendar.ExcludeWeekends),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	week, overrides, err := encodeCalendar(p.Calendar)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET name = ?, start_date = ?, default_week = ?, monthly_overrides = ?, exclude_weekends = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		p.Name,
		p.StartDate.Format(dateLayout),
		week,
		overrides,
		boolToInt(p.Calendar.ExcludeWeekends),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	var startDateStr, weekJSON, overridesJSON, createdAtStr, updatedAtStr string
	var excludeWeekends int

	err := row.Scan(
		&p.ID, &p.Name,
		&startDateStr, &weekJSON, &overridesJSON, &excludeWeekends,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if p.StartDate, err = time.Parse(dateLayout, startDateStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	p.Calendar.DefaultWeek = domain.WeekHours{}
	if err := unmarshalColumn(weekJSON, &p.Calendar.DefaultWeek); err != nil {
		return nil, fmt.Errorf("decoding default_week: %w", err)
	}
	p.Calendar.MonthlyOverrides = map[time.Month]domain.WeekHours{}
	if err := unmarshalColumn(overridesJSON, &p.Calendar.MonthlyOverrides); err != nil {
		return nil, fmt.Errorf("decoding monthly_overrides: %w", err)
	}
	p.Calendar.ExcludeWeekends = intToBool(excludeWeekends)

	return &p, nil
}

// encodeCalendar serializes the two JSON calendar columns of a project row.
func encodeCalendar(cal domain.Calendar) (week, overrides string, err error) {
	if week, err = marshalColumn(cal.DefaultWeek); err != nil {
		return "", "", fmt.Errorf("encoding default_week: %w", err)
	}
	if cal.MonthlyOverrides == nil {
		overrides = "{}"
	} else if overrides, err = marshalColumn(cal.MonthlyOverrides); err != nil {
		return "", "", fmt.Errorf("encoding monthly_overrides: %w", err)
	}
	return week, overrides, nil
}
