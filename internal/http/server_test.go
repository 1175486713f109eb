package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/planfile"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func samplePlan() *planfile.Schema {
	return &planfile.Schema{
		Project: planfile.ProjectSection{Name: "AI Platform", StartDate: "2025-06-02"},
		Calendar: planfile.CalendarSection{
			DefaultWeek: map[string]float64{
				"Monday": 8, "Tuesday": 8, "Wednesday": 8, "Thursday": 8, "Friday": 8,
			},
			ExcludeWeekends: true,
		},
		Roles: map[string]planfile.RoleSection{
			"AI Engineer": {AvailabilityPercent: 100},
		},
		Tasks: []planfile.TaskSection{
			{ID: 1, Name: "Research", EffortHours: 16,
				Assignments:  []planfile.AssignmentSection{{Role: "AI Engineer", Allocation: 100}},
				Dependencies: []int{}},
			{ID: 2, Name: "Prototype", EffortHours: 8,
				Assignments:  []planfile.AssignmentSection{{Role: "AI Engineer", Allocation: 100}},
				Dependencies: []int{1}},
		},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestLevelEndpoint_SchedulesPlan(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/level", samplePlan())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Plan        planfile.Schema `json:"plan"`
		Unscheduled []int           `json:"unscheduled"`
		ProjectEnd  *string         `json:"project_end"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Empty(t, result.Unscheduled)
	require.NotNil(t, result.ProjectEnd)
	// 16h then 8h back to back on an 8h/day week: Mon-Tue, then Wed.
	assert.Equal(t, "2025-06-04", *result.ProjectEnd)

	require.Len(t, result.Plan.Tasks, 2)
	first := result.Plan.Tasks[0]
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2025-06-02", *first.StartDate)
	assert.Equal(t, "scheduled", first.Status)
}

func TestLevelEndpoint_WorkloadQuery(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/level?workload=1", samplePlan())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Workload []struct {
			Date  string             `json:"date"`
			Hours map[string]float64 `json:"hours"`
		} `json:"workload"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Workload, 3)
	assert.Equal(t, "2025-06-02", result.Workload[0].Date)
	assert.InDelta(t, 8.0, result.Workload[0].Hours["AI Engineer"], 1e-9)
}

func TestLevelEndpoint_RejectsInvalidPlan(t *testing.T) {
	srv := testServer(t)

	plan := samplePlan()
	plan.Tasks[0].Assignments[0].Role = "Ghost"

	resp := postJSON(t, srv.URL+"/api/v1/level", plan)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid_plan", body.Error)
	require.NotEmpty(t, body.Details)
	assert.Contains(t, body.Details[0], "Ghost")
}

func TestLevelEndpoint_RejectsMalformedBody(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/level", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLevelEndpoint_DegenerateCalendar(t *testing.T) {
	srv := testServer(t)

	plan := samplePlan()
	plan.Calendar.DefaultWeek = map[string]float64{"Monday": 0}

	resp := postJSON(t, srv.URL+"/api/v1/level", plan)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no_working_days", body["error"])
}

func TestEstimateEndpoint(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/estimate", samplePlan())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Tasks []struct {
			ID           int     `json:"id"`
			DurationDays float64 `json:"duration_days"`
			Infeasible   bool    `json:"infeasible"`
		} `json:"tasks"`
		TotalDays float64 `json:"total_days"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, 2.0, result.Tasks[0].DurationDays)
	assert.Equal(t, 1.0, result.Tasks[1].DurationDays)
	assert.Equal(t, 3.0, result.TotalDays)
}

func TestUnknownPathReturnsJSON404(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v2/level")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not_found", body["error"])
}
