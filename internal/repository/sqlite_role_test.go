package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/testutil"
)

func TestRoleRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteRoleRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("P")
	require.NoError(t, projects.Create(ctx, proj))

	role := testutil.NewTestRole("Tech Lead", testutil.WithAvailability(80), testutil.WithHourlyRate(40))
	require.NoError(t, repo.Upsert(ctx, proj.ID, role))

	fetched, err := repo.Get(ctx, proj.ID, "Tech Lead")
	require.NoError(t, err)
	assert.Equal(t, 80.0, fetched.AvailabilityPct)
	assert.Equal(t, 40.0, fetched.HourlyRate)
}

func TestRoleRepo_UpsertOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteRoleRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("P")
	require.NoError(t, projects.Create(ctx, proj))

	require.NoError(t, repo.Upsert(ctx, proj.ID, testutil.NewTestRole("QA", testutil.WithAvailability(50))))
	require.NoError(t, repo.Upsert(ctx, proj.ID, testutil.NewTestRole("QA", testutil.WithAvailability(75))))

	fetched, err := repo.Get(ctx, proj.ID, "QA")
	require.NoError(t, err)
	assert.Equal(t, 75.0, fetched.AvailabilityPct)

	roles, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestRoleRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteRoleRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("P")
	require.NoError(t, projects.Create(ctx, proj))

	_, err := repo.Get(ctx, proj.ID, "Ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoleRepo_ListByProject_ScopedToProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteRoleRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("P1")
	p2 := testutil.NewTestProject("P2")
	require.NoError(t, projects.Create(ctx, p1))
	require.NoError(t, projects.Create(ctx, p2))

	require.NoError(t, repo.Upsert(ctx, p1.ID, testutil.NewTestRole("Lead")))
	require.NoError(t, repo.Upsert(ctx, p1.ID, testutil.NewTestRole("Eng")))
	require.NoError(t, repo.Upsert(ctx, p2.ID, testutil.NewTestRole("Lead")))

	roles, err := repo.ListByProject(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Contains(t, roles, "Lead")
	assert.Contains(t, roles, "Eng")
}

func TestRoleRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteRoleRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("P")
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, repo.Upsert(ctx, proj.ID, testutil.NewTestRole("Lead")))
	require.NoError(t, repo.Delete(ctx, proj.ID, "Lead"))

	_, err := repo.Get(ctx, proj.ID, "Lead")
	assert.ErrorIs(t, err, ErrNotFound)
}
