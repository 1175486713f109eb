package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/domain"
)

func newRoleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage the role pool of a project",
	}

	cmd.AddCommand(
		newRoleAddCmd(app),
		newRoleListCmd(app),
		newRoleRemoveCmd(app),
	)

	return cmd
}

func newRoleAddCmd(app *App) *cobra.Command {
	var availability, rate float64

	cmd := &cobra.Command{
		Use:   "add PROJECT NAME",
		Short: "Add or update a role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			role := &domain.Role{
				Name:            args[1],
				AvailabilityPct: availability,
				HourlyRate:      rate,
			}
			if err := app.Roles.Upsert(ctx, p.ID, role); err != nil {
				return err
			}

			fmt.Printf("Saved role %s (%.0f%% available)\n", role.Name, role.AvailabilityPct)
			return nil
		},
	}

	cmd.Flags().Float64Var(&availability, "availability", 100, "Share of the working day the role can give, 0-100")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate for cost estimates")

	return cmd
}

func newRoleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			roles, err := app.Roles.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			if len(roles) == 0 {
				fmt.Println("No roles defined.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatRoleList(roles))
			return nil
		},
	}
}

func newRoleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT NAME",
		Short: "Remove a role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roles.Delete(ctx, p.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed role %s\n", args[1])
			return nil
		},
	}
}
