package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/domain"
)

// resolveProject finds a project by id, id prefix or name.
func resolveProject(ctx context.Context, app *App, ref string) (*domain.Project, error) {
	if ref == "" {
		return nil, fmt.Errorf("project reference is required")
	}

	if p, err := app.Projects.Resolve(ctx, ref); err == nil {
		return p, nil
	}

	// Fall back to a unique id prefix.
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Project
	for _, p := range projects {
		if len(ref) >= 4 && len(p.ID) >= len(ref) && p.ID[:len(ref)] == ref {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectCalendarCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No flags on a terminal: run the wizard instead.
			if name == "" && start == "" && app.interactive() {
				return runProjectWizard(ctx, app)
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p := &domain.Project{
				Name:      name,
				StartDate: startDate,
			}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, shortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROJECT",
		Short: "Show project details",
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
			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			data := formatter.ProjectInspectData{
				Project: p,
				Roles:   roles,
				Tasks:   tasks,
			}
			fmt.Printf("%s\n", formatter.FormatProjectInspect(data))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, start string

	cmd := &cobra.Command{
		Use:   "update PROJECT",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = startDate
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")

	return cmd
}

func newProjectCalendarCmd(app *App) *cobra.Command {
	var days []string
	var month int
	var includeWeekends bool

	cmd := &cobra.Command{
		Use:   "calendar PROJECT",
		Short: "Show or change the working-time calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if len(days) == 0 && !cmd.Flags().Changed("include-weekends") {
				fmt.Printf("%s\n", formatter.FormatCalendar(p.Calendar))
				return nil
			}

			week, err := parseWeekFlags(days)
			if err != nil {
				return err
			}

			if month != 0 {
				if month < 1 || month > 12 {
					return fmt.Errorf("invalid month %d", month)
				}
				if p.Calendar.MonthlyOverrides == nil {
					p.Calendar.MonthlyOverrides = map[time.Month]domain.WeekHours{}
				}
				p.Calendar.MonthlyOverrides[time.Month(month)] = week
			} else if len(week) > 0 {
				for wd, h := range week {
					p.Calendar.DefaultWeek[wd] = h
				}
			}
			if cmd.Flags().Changed("include-weekends") {
				p.Calendar.ExcludeWeekends = !includeWeekends
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCalendar(p.Calendar))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&days, "day", nil, "Weekday hours (e.g. Monday=8), repeatable")
	cmd.Flags().IntVar(&month, "month", 0, "Apply --day values as an override for this month (1-12)")
	cmd.Flags().BoolVar(&includeWeekends, "include-weekends", false, "Allow scheduling on Saturday and Sunday")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", p.Name)
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
