package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelarde/planlevel/internal/db"
	"github.com/avelarde/planlevel/internal/domain"
)

// SQLiteRoleRepo implements RoleRepo using a SQLite database.
type SQLiteRoleRepo struct {
	db db.DBTX
}

// NewSQLiteRoleRepo creates a new SQLiteRoleRepo.
func NewSQLiteRoleRepo(dbtx db.DBTX) *SQLiteRoleRepo {
	return &SQLiteRoleRepo{db: dbtx}
}

func (r *SQLiteRoleRepo) Upsert(ctx context.Context, projectID string, role *domain.Role) error {
	now := nowUTC()
	query := `INSERT INTO roles (project_id, name, availability_pct, hourly_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, name) DO UPDATE
		SET availability_pct = excluded.availability_pct,
		    hourly_rate = excluded.hourly_rate,
		    updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		projectID,
		role.Name,
		role.AvailabilityPct,
		role.HourlyRate,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting role: %w", err)
	}
	return nil
}

func (r *SQLiteRoleRepo) Get(ctx context.Context, projectID, name string) (*domain.Role, error) {
	query := `SELECT name, availability_pct, hourly_rate FROM roles WHERE project_id = ? AND name = ?`
	var role domain.Role
	err := r.db.QueryRowContext(ctx, query, projectID, name).
		Scan(&role.Name, &role.AvailabilityPct, &role.HourlyRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("role %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning role: %w", err)
	}
	return &role, nil
}

func (r *SQLiteRoleRepo) ListByProject(ctx context.Context, projectID string) (domain.RoleMap, error) {
	query := `SELECT name, availability_pct, hourly_rate FROM roles WHERE project_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	roles := domain.RoleMap{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.Name, &role.AvailabilityPct, &role.HourlyRate); err != nil {
			return nil, fmt.Errorf("scanning role row: %w", err)
		}
		roles[role.Name] = role
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return roles, nil
}

func (r *SQLiteRoleRepo) Delete(ctx context.Context, projectID, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE project_id = ? AND name = ?`, projectID, name)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}
	return nil
}
