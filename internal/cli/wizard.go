package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/domain"
)

// planlevelHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func planlevelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validatePct accepts empty or a number in [0,100].
func validatePct(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateTaskID accepts a positive integer.
func validateTaskID(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive task id")
	}
	return nil
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// runProjectWizard interactively creates a project and, optionally, its
// initial role pool.
func runProjectWizard(ctx context.Context, app *App) error {
	var name, start string
	start = time.Now().Format("2006-01-02")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&name).
				Validate(validateRequired("project name")),
			huh.NewInput().
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Value(&start).
				Validate(validateDate),
		),
	).WithTheme(planlevelHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}

	p := &domain.Project{Name: name, StartDate: startDate}
	if err := app.Projects.Create(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Created project %s [%s]\n", p.Name, shortID(p.ID))

	for {
		var addRole bool
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add a role?").
					Affirmative("Yes").
					Negative("Done").
					Value(&addRole),
			),
		).WithTheme(planlevelHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !addRole {
			return nil
		}
		if err := runRoleWizard(ctx, app, p); err != nil {
			return err
		}
	}
}

func runRoleWizard(ctx context.Context, app *App, p *domain.Project) error {
	var name, availability, rate string
	availability = "100"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Role Name").
				Placeholder("e.g. AI Engineer").
				Value(&name).
				Validate(validateRequired("role name")),
			huh.NewInput().
				Title("Availability (%)").
				Placeholder("100").
				Value(&availability).
				Validate(validatePct),
			huh.NewInput().
				Title("Hourly Rate").
				Placeholder("0").
				Value(&rate).
				Validate(validateNonNegativeFloat),
		),
	).WithTheme(planlevelHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	role := &domain.Role{
		Name:            name,
		AvailabilityPct: parseFloatOr(availability, 100),
		HourlyRate:      parseFloatOr(rate, 0),
	}
	if err := app.Roles.Upsert(ctx, p.ID, role); err != nil {
		return err
	}
	fmt.Printf("Saved role %s\n", role.Name)
	return nil
}

// runTaskWizard interactively adds a task to the project.
func runTaskWizard(ctx context.Context, app *App, p *domain.Project) error {
	roles, err := app.Roles.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return fmt.Errorf("project %s has no roles yet, add one with `planlevel role add`", p.Name)
	}

	existing, err := app.Tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	nextID := 1
	for _, t := range existing {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}

	var idStr, phase, name, effort, roleName, allocation, deps string
	idStr = strconv.Itoa(nextID)
	allocation = "100"

	roleNames := make([]string, 0, len(roles))
	for name := range roles {
		roleNames = append(roleNames, name)
	}
	sort.Strings(roleNames)
	roleOptions := make([]huh.Option[string], 0, len(roleNames))
	for _, name := range roleNames {
		roleOptions = append(roleOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task ID").
				Value(&idStr).
				Validate(validateTaskID),
			huh.NewInput().
				Title("Task Name").
				Value(&name).
				Validate(validateRequired("task name")),
			huh.NewInput().
				Title("Phase").
				Placeholder("optional").
				Value(&phase),
			huh.NewInput().
				Title("Effort (hours)").
				Placeholder("0 makes a milestone").
				Value(&effort).
				Validate(validateNonNegativeFloat),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Assigned Role").
				Options(roleOptions...).
				Value(&roleName),
			huh.NewInput().
				Title("Allocation (%)").
				Placeholder("100").
				Value(&allocation).
				Validate(validatePct),
			huh.NewInput().
				Title("Dependencies").
				Placeholder("comma-separated ids, optional").
				Value(&deps),
		),
	).WithTheme(planlevelHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	id, _ := strconv.Atoi(idStr)
	dependsOn, err := parseIntList(deps)
	if err != nil {
		return err
	}

	t := &domain.Task{
		ID:          id,
		Phase:       phase,
		Name:        name,
		EffortHours: parseFloatOr(effort, 0),
		DependsOn:   dependsOn,
	}
	if t.EffortHours > 0 {
		t.Assignments = []domain.Assignment{{Role: roleName, AllocationPct: parseFloatOr(allocation, 100)}}
	}

	if err := app.Tasks.Create(ctx, p.ID, t); err != nil {
		return err
	}
	fmt.Printf("Added task %d %s\n", t.ID, t.Name)
	return nil
}
