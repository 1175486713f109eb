package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/contract"
)

func newLevelCmd(app *App) *cobra.Command {
	var dryRun, workload, bars bool

	cmd := &cobra.Command{
		Use:   "level PROJECT",
		Short: "Run the leveler and commit task dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.NewLevelRequest(p.ID)
			req.DryRun = dryRun
			req.IncludeWorkload = workload

			resp, err := app.Level.Level(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSchedule(resp))
			if bars {
				fmt.Printf("%s\n", formatter.FormatScheduleBars(resp))
			}
			if workload {
				fmt.Printf("%s\n", formatter.FormatWorkload(resp.Workload))
			}
			if dryRun {
				fmt.Println(formatter.Dim("  Dry run: no dates were persisted."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the schedule without persisting task dates")
	cmd.Flags().BoolVar(&workload, "workload", false, "Show day-by-day role commitments")
	cmd.Flags().BoolVar(&bars, "bars", false, "Show an ASCII timeline of the schedule")

	return cmd
}
