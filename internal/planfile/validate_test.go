package planfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	return &Schema{
		Project: ProjectSection{Name: "AI Platform", StartDate: "2025-06-02"},
		Calendar: CalendarSection{
			DefaultWeek: map[string]float64{
				"Monday": 9, "Tuesday": 9, "Wednesday": 9, "Thursday": 9, "Friday": 7,
			},
			ExcludeWeekends: true,
		},
		Roles: map[string]RoleSection{
			"Tech Lead":   {AvailabilityPercent: 100, HourlyRate: 40},
			"AI Engineer": {AvailabilityPercent: 80, HourlyRate: 30},
		},
		Tasks: []TaskSection{
			{ID: 100, Name: "Kick-off", EffortHours: 16,
				Assignments:  []AssignmentSection{{Role: "Tech Lead", Allocation: 100}},
				Dependencies: []int{}},
			{ID: 1, Name: "Benchmark research", EffortHours: 24,
				Assignments: []AssignmentSection{
					{Role: "Tech Lead", Allocation: 30},
					{Role: "AI Engineer", Allocation: 70},
				},
				Dependencies: []int{100}},
		},
	}
}

func TestValidate_AcceptsWellFormedSchema(t *testing.T) {
	assert.Empty(t, Validate(validSchema()))
}

func TestValidate_MissingProjectFields(t *testing.T) {
	schema := validSchema()
	schema.Project = ProjectSection{}

	errs := Validate(schema)
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "project.name")
	assert.ErrorContains(t, errs[1], "project.start_date")
}

func TestValidate_BadDateFormat(t *testing.T) {
	schema := validSchema()
	schema.Project.StartDate = "02/06/2025"

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "expected YYYY-MM-DD")
}

func TestValidate_UnknownRoleInAssignment(t *testing.T) {
	schema := validSchema()
	schema.Tasks[0].Assignments[0].Role = "Designer"

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], `unknown role "Designer"`)
}

func TestValidate_UnknownDependencyID(t *testing.T) {
	schema := validSchema()
	schema.Tasks[1].Dependencies = []int{42}

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "unknown task id 42")
}

func TestValidate_DuplicateTaskID(t *testing.T) {
	schema := validSchema()
	schema.Tasks[1].ID = 100
	schema.Tasks[1].Dependencies = nil

	errs := Validate(schema)
	require.NotEmpty(t, errs)
	assert.ErrorContains(t, errs[0], "duplicate id 100")
}

func TestValidate_SelfDependency(t *testing.T) {
	schema := validSchema()
	schema.Tasks[0].Dependencies = []int{100}

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "depends on itself")
}

func TestValidate_AllocationOutOfRange(t *testing.T) {
	schema := validSchema()
	schema.Tasks[0].Assignments[0].Allocation = 120

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "out of range [0,100]")
}

func TestValidate_DuplicateRoleAssignment(t *testing.T) {
	schema := validSchema()
	schema.Tasks[0].Assignments = append(schema.Tasks[0].Assignments,
		AssignmentSection{Role: "Tech Lead", Allocation: 10})

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "assigned more than once")
}

func TestValidate_NegativeEffort(t *testing.T) {
	schema := validSchema()
	schema.Tasks[0].EffortHours = -1

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "effort_hours")
}

func TestValidate_BadWeekdayAndMonthKeys(t *testing.T) {
	schema := validSchema()
	schema.Calendar.DefaultWeek["Funday"] = 8
	schema.Calendar.MonthlyOverrides = map[string]map[string]float64{
		"13": {"Monday": 4},
	}

	errs := Validate(schema)
	require.Len(t, errs, 2)
}

func TestValidate_AvailabilityOutOfRange(t *testing.T) {
	schema := validSchema()
	schema.Roles["Tech Lead"] = RoleSection{AvailabilityPercent: 150}

	errs := Validate(schema)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "availability_percent")
}
