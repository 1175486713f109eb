package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avelarde/planlevel/internal/cli/formatter"
	"github.com/avelarde/planlevel/internal/contract"
	"github.com/avelarde/planlevel/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule PROJECT",
		Short: "Browse the committed schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			// Without a terminal, print the static view and exit.
			if !app.interactive() {
				tasks, err := app.Tasks.ListByProject(ctx, p.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
				return nil
			}

			model := newScheduleModel(app, p)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// tasksLoadedMsg signals that the task list has been loaded.
type tasksLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

// scheduleModel is the bubbletea model behind `planlevel schedule`: a
// navigable task list with an optional timeline panel.
type scheduleModel struct {
	app     *App
	project *domain.Project

	tasks   []*domain.Task
	cursor  int
	loading bool
	err     error

	showBars bool

	// Filtering
	filtering bool
	filter    string

	keys scheduleKeyMap
}

type scheduleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Bars   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultScheduleKeys() scheduleKeyMap {
	return scheduleKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Bars:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "timeline")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newScheduleModel(app *App, project *domain.Project) *scheduleModel {
	return &scheduleModel{
		app:     app,
		project: project,
		loading: true,
		keys:    defaultScheduleKeys(),
	}
}

func (m *scheduleModel) Init() tea.Cmd {
	return m.loadTasks()
}

func (m *scheduleModel) loadTasks() tea.Cmd {
	app, projectID := m.app, m.project.ID
	return func() tea.Msg {
		tasks, err := app.Tasks.ListByProject(context.Background(), projectID)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *scheduleModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter = ""
		m.cursor = 0
	case key.Matches(msg, m.keys.Bars):
		m.showBars = !m.showBars
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadTasks()
	}
	return m, nil
}

func (m *scheduleModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *scheduleModel) visibleTasks() []*domain.Task {
	if m.filter == "" {
		return m.tasks
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Task
	for _, t := range m.tasks {
		if strings.Contains(strings.ToLower(t.Name), lf) ||
			strings.Contains(strings.ToLower(t.Phase), lf) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func (m *scheduleModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading schedule...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	visible := m.visibleTasks()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(m.project.Name) + "\n\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks found.") + "\n")
	}

	for i, t := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%4d  %s  %s → %s  %s\n",
			cursor,
			t.ID,
			nameStyle.Render(formatter.TruncName(t.Name, 28)),
			formatter.FormatDate(t.StartDate),
			formatter.FormatDate(t.EndDate),
			formatter.StatusPill(t.Status),
		))
	}

	if m.showBars {
		b.WriteString("\n")
		b.WriteString(formatter.FormatScheduleBars(m.scheduleResponse(visible)))
	}

	b.WriteString("\n  " + m.helpLine() + "\n")
	return b.String()
}

// scheduleResponse adapts the persisted task list to the shape the
// timeline renderer consumes.
func (m *scheduleModel) scheduleResponse(tasks []*domain.Task) *contract.LevelResponse {
	resp := &contract.LevelResponse{
		ProjectID:   m.project.ID,
		ProjectName: m.project.Name,
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, contract.TaskSchedule{
			ID:        t.ID,
			Phase:     t.Phase,
			Name:      t.Name,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Status:    t.Status,
		})
	}
	return resp
}

func (m *scheduleModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Filter, m.keys.Bars, m.keys.Reload, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.StyleYellow.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, "  ")
}
