// Package planfile reads and writes the JSON plan files exchanged with
// host applications: project settings, the working-time calendar, the
// role pool and the task list. Dependencies travel as an array of task
// ids and assignments as an array of {role, allocation} records, so
// files written by other tools round-trip unchanged.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Schema is the top-level JSON structure of a plan file.
type Schema struct {
	Project  ProjectSection         `json:"project"`
	Calendar CalendarSection        `json:"calendar"`
	Roles    map[string]RoleSection `json:"roles"`
	Tasks    []TaskSection          `json:"tasks"`
}

// ProjectSection defines the project-level fields.
type ProjectSection struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

// CalendarSection defines the working-time calendar. Weekday keys are
// English day names; monthly override keys are month numbers "1".."12".
type CalendarSection struct {
	DefaultWeek      map[string]float64            `json:"default_week"`
	MonthlyOverrides map[string]map[string]float64 `json:"monthly_overrides,omitempty"`
	ExcludeWeekends  bool                          `json:"exclude_weekends"`
}

// RoleSection defines one role of the shared pool.
type RoleSection struct {
	AvailabilityPercent float64 `json:"availability_percent"`
	HourlyRate          float64 `json:"hourly_rate,omitempty"`
}

// TaskSection defines one task.
type TaskSection struct {
	ID           int                  `json:"id"`
	Phase        string               `json:"phase,omitempty"`
	Name         string               `json:"name"`
	EffortHours  float64              `json:"effort_hours"`
	Assignments  []AssignmentSection  `json:"assignments"`
	Dependencies []int                `json:"dependencies"`
	StartDate    *string              `json:"start_date,omitempty"`
	EndDate      *string              `json:"end_date,omitempty"`
	Status       string               `json:"status,omitempty"`
}

// AssignmentSection dedicates a share of a role's time to the task.
type AssignmentSection struct {
	Role       string  `json:"role"`
	Allocation float64 `json:"allocation"`
}

// Load reads and parses a plan file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a plan file body.
func Parse(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}

// Write serializes a schema to a file, indented for hand editing.
func Write(path string, schema *Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}
