package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/contract"
)

func TestEstimate_AllTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID := importSample(t, f)

	resp, err := f.estimate.Estimate(ctx, contract.EstimateRequest{ProjectID: projectID})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 3)

	byID := map[int]contract.TaskEstimate{}
	for _, e := range resp.Tasks {
		byID[e.ID] = e
	}

	// 16h at a full-time engineer on an 8h/day week is two days.
	assert.Equal(t, 2.0, byID[1].DurationDays)
	assert.False(t, byID[1].Infeasible)
	// Effort priced at the engineer's 30/h rate.
	assert.InDelta(t, 480.0, byID[1].Cost, 1e-9)

	// The milestone has no assignments and no cost.
	assert.Zero(t, byID[100].Cost)
	assert.False(t, byID[100].Infeasible)

	assert.InDelta(t, 960.0, resp.TotalCost, 1e-9)
}

func TestEstimate_SubsetOfTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID := importSample(t, f)

	resp, err := f.estimate.Estimate(ctx, contract.EstimateRequest{ProjectID: projectID, TaskIDs: []int{2}})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, 2, resp.Tasks[0].ID)
}

func TestEstimate_TaskNotFound(t *testing.T) {
	f := newFixture(t)
	projectID := importSample(t, f)

	_, err := f.estimate.Estimate(context.Background(), contract.EstimateRequest{ProjectID: projectID, TaskIDs: []int{999}})
	var estErr *contract.EstimateError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, contract.EstimateErrTaskNotFound, estErr.Code)
}

func TestEstimate_ProjectNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.estimate.Estimate(context.Background(), contract.EstimateRequest{ProjectID: "nonexistent"})
	var estErr *contract.EstimateError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, contract.EstimateErrProjectNotFound, estErr.Code)
}
