package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/domain"
)

func TestProjectService_CreateAssignsIDAndCalendar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Bare"}
	require.NoError(t, f.projects.Create(ctx, p))
	assert.NotEmpty(t, p.ID)

	fetched, err := f.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, fetched.Calendar.DefaultWeek, "empty calendar defaults to the standard week")
}

func TestProjectService_ResolveByIDOrName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	proj := seedProject(t, f, "Rollout")

	byID, err := f.projects.Resolve(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, byID.ID)

	byName, err := f.projects.Resolve(ctx, "Rollout")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, byName.ID)

	_, err = f.projects.Resolve(ctx, "missing")
	assert.Error(t, err)
}

func TestRoleService_RejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	proj := seedProject(t, f, "P")

	err := f.roles.Upsert(ctx, proj.ID, &domain.Role{Name: "", AvailabilityPct: 50})
	assert.ErrorContains(t, err, "name is required")

	err = f.roles.Upsert(ctx, proj.ID, &domain.Role{Name: "Lead", AvailabilityPct: 150})
	assert.ErrorContains(t, err, "out of range")

	err = f.roles.Upsert(ctx, proj.ID, &domain.Role{Name: "Lead", AvailabilityPct: 50, HourlyRate: -1})
	assert.ErrorContains(t, err, "negative")
}

func TestRoleService_DeleteGuardedByAssignments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID := importSample(t, f)

	err := f.roles.Delete(ctx, projectID, "AI Engineer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned to task")

	// Unassigned roles can go.
	require.NoError(t, f.roles.Delete(ctx, projectID, "Tech Lead"))
}

func TestTaskService_ValidatesAssignmentsAndDeps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID := importSample(t, f)

	bad := &domain.Task{ID: 50, Name: "Bad", EffortHours: 8,
		Assignments: []domain.Assignment{{Role: "Ghost", AllocationPct: 50}}}
	assert.ErrorContains(t, f.tasks.Create(ctx, projectID, bad), `unknown role "Ghost"`)

	selfDep := &domain.Task{ID: 51, Name: "Loop", DependsOn: []int{51}}
	assert.ErrorContains(t, f.tasks.Create(ctx, projectID, selfDep), "depends on itself")

	overAlloc := &domain.Task{ID: 52, Name: "Over", EffortHours: 8,
		Assignments: []domain.Assignment{{Role: "Tech Lead", AllocationPct: 120}}}
	assert.ErrorContains(t, f.tasks.Create(ctx, projectID, overAlloc), "out of range")
}

func TestTaskService_DeleteGuardedByDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID := importSample(t, f)

	err := f.tasks.Delete(ctx, projectID, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depends on task 100")

	// Leaf tasks delete cleanly.
	require.NoError(t, f.tasks.Delete(ctx, projectID, 2))
}
