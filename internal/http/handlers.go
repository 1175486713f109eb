package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/avelarde/planlevel/internal/calendar"
	"github.com/avelarde/planlevel/internal/planfile"
	"github.com/avelarde/planlevel/internal/scheduler"
)

type planHandler struct {
	log zerolog.Logger
}

// levelResult is the response of POST /api/v1/level: the input plan with
// dates and statuses filled in, plus run metadata.
type levelResult struct {
	Plan        *planfile.Schema `json:"plan"`
	Unscheduled []int            `json:"unscheduled"`
	Passes      int              `json:"passes"`
	ProjectEnd  *string          `json:"project_end,omitempty"`
	Workload    []workloadDay    `json:"workload,omitempty"`
}

type workloadDay struct {
	Date  string             `json:"date"`
	Hours map[string]float64 `json:"hours"`
}

type estimateResult struct {
	Tasks     []taskEstimate `json:"tasks"`
	TotalDays float64        `json:"total_days"`
}

type taskEstimate struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	EffortHours  float64 `json:"effort_hours"`
	DurationDays float64 `json:"duration_days"`
	Infeasible   bool    `json:"infeasible"`
}

func (h *planHandler) level(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.decodePlan(w, r)
	if !ok {
		return
	}

	input := scheduler.Input{
		Tasks:        plan.Tasks,
		Roles:        plan.Roles,
		Calendar:     calendar.New(plan.Project.Calendar),
		ProjectStart: plan.Project.StartDate,
	}
	result, err := scheduler.Level(input, h.log)
	if err != nil {
		if errors.Is(err, calendar.ErrNoWorkingDays) {
			writeError(w, http.StatusUnprocessableEntity, "no_working_days", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	// Fold the outcome back into the plan's tasks.
	byID := make(map[int]*scheduler.TaskResult, len(result.Tasks))
	for i := range result.Tasks {
		byID[result.Tasks[i].ID] = &result.Tasks[i]
	}
	var projectEnd *time.Time
	for i := range plan.Tasks {
		tr, ok := byID[plan.Tasks[i].ID]
		if !ok {
			continue
		}
		plan.Tasks[i].StartDate = tr.Start
		plan.Tasks[i].EndDate = tr.End
		plan.Tasks[i].Status = tr.Status
		if tr.End != nil && (projectEnd == nil || tr.End.After(*projectEnd)) {
			projectEnd = tr.End
		}
	}

	resp := levelResult{
		Plan:        planfile.FromDomain(plan),
		Unscheduled: result.Unscheduled,
		Passes:      result.Passes,
	}
	if projectEnd != nil {
		end := projectEnd.Format("2006-01-02")
		resp.ProjectEnd = &end
	}
	if r.URL.Query().Get("workload") == "1" {
		for _, day := range result.Ledger.Snapshot() {
			wd := workloadDay{Date: day.Date.Format("2006-01-02"), Hours: map[string]float64{}}
			for _, entry := range day.Roles {
				wd.Hours[entry.Role] = entry.Hours
			}
			resp.Workload = append(resp.Workload, wd)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *planHandler) estimate(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.decodePlan(w, r)
	if !ok {
		return
	}

	cal := calendar.New(plan.Project.Calendar)
	resp := estimateResult{}
	for _, t := range plan.Tasks {
		days := scheduler.EstimateDays(t, plan.Roles, cal)
		infeasible := days == scheduler.InfeasibleDays && !t.IsMilestone()
		est := taskEstimate{
			ID:           t.ID,
			Name:         t.Name,
			EffortHours:  t.EffortHours,
			DurationDays: days,
			Infeasible:   infeasible,
		}
		resp.Tasks = append(resp.Tasks, est)
		if !infeasible && !t.IsMilestone() {
			resp.TotalDays += days
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodePlan parses and validates the posted plan file. On failure it has
// already written the error response.
func (h *planHandler) decodePlan(w http.ResponseWriter, r *http.Request) (*planfile.Plan, bool) {
	var schema planfile.Schema
	if err := json.NewDecoder(r.Body).Decode(&schema); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return nil, false
	}
	if errs := planfile.Validate(&schema); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   "invalid_plan",
			"details": msgs,
		})
		return nil, false
	}
	plan, err := planfile.ToDomain(&schema)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_plan", err.Error())
		return nil, false
	}
	return plan, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}
