package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Roles    service.RoleService
	Tasks    service.TaskService
	Import   service.ImportService
	Export   service.ExportService
	Estimate service.EstimateService
	Level    service.LevelService

	// HTTPAddr is the default listen address of `planlevel serve`.
	HTTPAddr string

	Log zerolog.Logger

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// schedule browser only start when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "planlevel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planlevel",
		Short: "Resource-leveling scheduler for effort-sized project plans",
	}

	root.AddCommand(
		newProjectCmd(app),
		newRoleCmd(app),
		newTaskCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newEstimateCmd(app),
		newLevelCmd(app),
		newScheduleCmd(app),
		newServeCmd(app),
	)

	return root
}
