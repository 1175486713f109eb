package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/contract"
)

func newEstimateCmd(app *App) *cobra.Command {
	var tasks string

	cmd := &cobra.Command{
		Use:   "estimate PROJECT",
		Short: "Estimate task durations and cost without scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			taskIDs, err := parseIntList(tasks)
			if err != nil {
				return err
			}

			resp, err := app.Estimate.Estimate(ctx, contract.EstimateRequest{
				ProjectID: p.ID,
				TaskIDs:   taskIDs,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatEstimate(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&tasks, "tasks", "", "Comma-separated task ids, empty means all")

	return cmd
}
