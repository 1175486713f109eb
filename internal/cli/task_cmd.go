package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of a project",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var id int
	var phase, name, deps string
	var effort float64
	var assigns assignmentsFlag

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			// No detail flags on a terminal: run the wizard instead.
			if name == "" && app.interactive() {
				return runTaskWizard(ctx, app, p)
			}

			dependsOn, err := parseIntList(deps)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ID:          id,
				Phase:       phase,
				Name:        name,
				EffortHours: effort,
				Assignments: assigns.assignments,
				DependsOn:   dependsOn,
			}
			if err := app.Tasks.Create(ctx, p.ID, t); err != nil {
				return err
			}

			fmt.Printf("Added task %d %s\n", t.ID, t.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Task id, unique within the project")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase label")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort in hours (0 makes a milestone)")
	cmd.Flags().Var(&assigns, "assign", "Role assignment (Role=Pct), repeatable")
	cmd.Flags().StringVar(&deps, "deps", "", "Comma-separated dependency ids")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var phase, name, deps string
	var effort float64
	var assigns assignmentsFlag

	cmd := &cobra.Command{
		Use:   "update PROJECT ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[1])
			}
			t, err := app.Tasks.GetByID(ctx, p.ID, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("phase") {
				t.Phase = phase
			}
			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("effort") {
				t.EffortHours = effort
			}
			if cmd.Flags().Changed("assign") {
				t.Assignments = assigns.assignments
			}
			if cmd.Flags().Changed("deps") {
				dependsOn, err := parseIntList(deps)
				if err != nil {
					return err
				}
				t.DependsOn = dependsOn
			}

			if err := app.Tasks.Update(ctx, p.ID, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %d %s\n", t.ID, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", "", "Phase label")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort in hours")
	cmd.Flags().Var(&assigns, "assign", "Role assignment (Role=Pct), replaces all assignments")
	cmd.Flags().StringVar(&deps, "deps", "", "Comma-separated dependency ids, replaces all dependencies")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[1])
			}
			if err := app.Tasks.Delete(ctx, p.ID, id); err != nil {
				return err
			}
			fmt.Printf("Removed task %d\n", id)
			return nil
		},
	}
}
