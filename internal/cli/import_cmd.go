package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported project %s [%s]: %d roles, %d tasks\n",
				result.Project.Name, shortID(result.Project.ID),
				result.RoleCount, result.TaskCount)
			return nil
		},
	}
}
