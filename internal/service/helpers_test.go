package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/avelarde/planlevel/internal/domain"
	"github.com/avelarde/planlevel/internal/planfile"
	"github.com/avelarde/planlevel/internal/repository"
	"github.com/avelarde/planlevel/internal/testutil"
)

// fixture wires every service against one in-memory database.
type fixture struct {
	projects ProjectService
	roles    RoleService
	tasks    TaskService
	imports  ImportService
	exports  ExportService
	estimate EstimateService
	level    LevelService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	roleRepo := repository.NewSQLiteRoleRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	return &fixture{
		projects: NewProjectService(projectRepo),
		roles:    NewRoleService(roleRepo, taskRepo),
		tasks:    NewTaskService(taskRepo, roleRepo),
		imports:  NewImportService(projectRepo, uow),
		exports:  NewExportService(projectRepo, roleRepo, taskRepo),
		estimate: NewEstimateService(projectRepo, roleRepo, taskRepo),
		level:    NewLevelService(projectRepo, roleRepo, taskRepo, uow, zerolog.Nop()),
	}
}

// samplePlanSchema is a two-role, three-task plan starting Monday
// 2025-06-02: a kick-off milestone chain feeding two effort tasks that
// contend for the same engineer.
func samplePlanSchema() *planfile.Schema {
	return &planfile.Schema{
		Project: planfile.ProjectSection{Name: "AI Platform", StartDate: "2025-06-02"},
		Calendar: planfile.CalendarSection{
			DefaultWeek: map[string]float64{
				"Monday": 8, "Tuesday": 8, "Wednesday": 8, "Thursday": 8, "Friday": 8,
			},
			ExcludeWeekends: true,
		},
		Roles: map[string]planfile.RoleSection{
			"Tech Lead":   {AvailabilityPercent: 100, HourlyRate: 40},
			"AI Engineer": {AvailabilityPercent: 100, HourlyRate: 30},
		},
		Tasks: []planfile.TaskSection{
			{ID: 100, Name: "Kick-off", EffortHours: 0,
				Assignments: []planfile.AssignmentSection{}, Dependencies: []int{}},
			{ID: 1, Name: "Benchmark research", EffortHours: 16,
				Assignments:  []planfile.AssignmentSection{{Role: "AI Engineer", Allocation: 100}},
				Dependencies: []int{100}},
			{ID: 2, Name: "Prototype", EffortHours: 16,
				Assignments:  []planfile.AssignmentSection{{Role: "AI Engineer", Allocation: 100}},
				Dependencies: []int{100}},
		},
	}
}

// importSample imports the sample plan and returns its project id.
func importSample(t *testing.T, f *fixture) string {
	t.Helper()
	res, err := f.imports.ImportPlanFromSchema(context.Background(), samplePlanSchema())
	require.NoError(t, err)
	return res.Project.ID
}

func seedProject(t *testing.T, f *fixture, name string) *domain.Project {
	t.Helper()
	proj := testutil.NewTestProject(name)
	require.NoError(t, f.projects.Create(context.Background(), proj))
	return proj
}
