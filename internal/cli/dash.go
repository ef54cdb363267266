package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dash needs an interactive terminal; try `freeflow stats`")
			}
			p := tea.NewProgram(newDashModel(cmd.Context(), app),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}

type dashKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Pay     key.Binding
	Urgent  key.Binding
	DoneAll key.Binding
	Detail  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newDashKeyMap() dashKeyMap {
	return dashKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Pay:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paid/pending")),
		Urgent:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "urgent")),
		DoneAll: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "complete tasks")),
		Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Sort, k.Pay, k.Urgent, k.Help, k.Quit}
}

func (k dashKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Filter, k.Sort},
		{k.Pay, k.Urgent, k.DoneAll},
		{k.Help, k.Quit},
	}
}

// dashLoadedMsg carries the project list for the current filter and sort.
type dashLoadedMsg struct {
	projects []domain.Project
	all      []domain.Project
	err      error
}

// dashMutatedMsg reports the outcome of a single-project action.
type dashMutatedMsg struct {
	verb    string
	project *domain.Project
	err     error
}

type dashModel struct {
	ctx  context.Context
	app  *App
	keys dashKeyMap
	help help.Model

	projects []domain.Project
	stats    dashboard.Stats
	filter   int
	sort     int
	cursor   int
	detail   bool
	loading  bool
	status   string
	err      error
}

func newDashModel(ctx context.Context, app *App) *dashModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &dashModel{
		ctx:     ctx,
		app:     app,
		keys:    newDashKeyMap(),
		help:    help.New(),
		loading: true,
	}
}

func (m *dashModel) currentFilter() dashboard.Filter { return dashboard.Filters[m.filter] }
func (m *dashModel) currentSort() dashboard.SortKey  { return dashboard.SortKeys[m.sort] }

func (m *dashModel) Init() tea.Cmd {
	return m.load()
}

func (m *dashModel) load() tea.Cmd {
	ctx, app := m.ctx, m.app
	filter, sortKey := m.currentFilter(), m.currentSort()
	return func() tea.Msg {
		all, err := app.Projects.List(ctx, dashboard.FilterAll, dashboard.SortNone)
		if err != nil {
			return dashLoadedMsg{err: err}
		}
		return dashLoadedMsg{all: all, projects: dashboard.FilterAndSort(all, filter, sortKey)}
	}
}

func (m *dashModel) mutate(verb string, fn func(context.Context, string) (*domain.Project, error)) tea.Cmd {
	if m.cursor >= len(m.projects) {
		return nil
	}
	ctx, id := m.ctx, m.projects[m.cursor].ID
	return func() tea.Msg {
		p, err := fn(ctx, id)
		return dashMutatedMsg{verb: verb, project: p, err: err}
	}
}

func (m *dashModel) selected() *domain.Project {
	if m.cursor < 0 || m.cursor >= len(m.projects) {
		return nil
	}
	return &m.projects[m.cursor]
}

func (m *dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case dashLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.projects = msg.projects
		m.stats = dashboard.ComputeStats(msg.all)
		if m.cursor >= len(m.projects) {
			m.cursor = max(len(m.projects)-1, 0)
		}
		return m, nil

	case dashMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("%s %s", msg.verb, msg.project.Name)
		return m, m.load()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *dashModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filter = (m.filter + 1) % len(dashboard.Filters)
		m.cursor = 0
		return m, m.load()
	case key.Matches(msg, m.keys.Sort):
		m.sort = (m.sort + 1) % len(dashboard.SortKeys)
		m.cursor = 0
		return m, m.load()
	case key.Matches(msg, m.keys.Pay):
		return m, m.mutate("Payment toggled for", m.app.Projects.TogglePayment)
	case key.Matches(msg, m.keys.Urgent):
		return m, m.mutate("Urgent toggled for", m.app.Projects.ToggleUrgent)
	case key.Matches(msg, m.keys.DoneAll):
		return m, m.mutate("Completed all tasks of", m.app.Projects.CompleteAllTasks)
	case key.Matches(msg, m.keys.Detail):
		m.detail = !m.detail
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *dashModel) View() string {
	if m.loading {
		return formatter.Dim("Loading projects...")
	}

	var b strings.Builder
	now := m.app.now()

	b.WriteString(formatter.FormatStats(m.stats) + "\n\n")
	fmt.Fprintf(&b, "%s  %s %s  %s %s\n\n",
		formatter.StyleHeader.Render("PROJECTS"),
		formatter.Dim("filter:"), formatter.StyleIndigo.Render(string(m.currentFilter())),
		formatter.Dim("sort:"), formatter.StyleIndigo.Render(string(m.currentSort())))

	if len(m.projects) == 0 {
		b.WriteString(formatter.Dim("  No projects match this filter.") + "\n")
	}
	for i := range m.projects {
		p := &m.projects[i]
		cursor := "  "
		name := p.Name
		if i == m.cursor {
			cursor = formatter.StyleIndigo.Render("> ")
			name = formatter.Bold(name)
		}
		fmt.Fprintf(&b, "%s%s %-24s %s %-14s %s  %s  %s  %s\n",
			cursor,
			formatter.UrgentBadge(p.Urgent),
			name,
			formatter.Swatch(p.ClientColor),
			p.ClientName,
			formatter.StatusPill(p.Status),
			formatter.PaymentPill(p.PaymentStatus),
			formatter.Money(p.Budget),
			formatter.DeadlineStyled(p.Deadline, now, p.Status == domain.StatusCompleted),
		)
	}

	if sel := m.selected(); m.detail && sel != nil {
		b.WriteString("\n" + formatter.FormatProjectDetail(sel, now) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(formatter.Success(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
