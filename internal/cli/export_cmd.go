package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/planfile"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export PROJECT",
		Short: "Export a project as a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			schema, err := app.Export.ExportPlan(ctx, p.ID)
			if err != nil {
				return err
			}

			if out != "" {
				if err := planfile.Write(out, schema); err != nil {
					return err
				}
				fmt.Printf("Exported %s to %s\n", p.Name, out)
				return nil
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
