package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// freeflowHuhTheme returns a huh theme in the indigo formatter palette.
func freeflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorIndigo).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorIndigo)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorEmerald)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorIndigo).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorIndigo)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorIndigo)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRose)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectFormValues is the raw text the project form collects. Dates and
// amounts stay as typed and go through the smart parsers afterwards.
type projectFormValues struct {
	Name        string
	Client      string
	Description string
	Kind        string
	Budget      string
	Deadline    string
	Tasks       string
	Urgent      bool
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// newProjectForm builds the interactive form used by `project add`. Known
// client names are offered as suggestions.
func newProjectForm(ctx context.Context, app *App, v *projectFormValues) *huh.Form {
	var suggestions []string
	if app.Clients != nil {
		if clients, err := app.Clients.List(ctx); err == nil {
			for _, c := range clients {
				suggestions = append(suggestions, c.Name)
			}
		}
	}
	if v.Kind == "" {
		v.Kind = string(domain.KindSingle)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&v.Name).
				Validate(required("project name")),
			huh.NewInput().
				Title("Client").
				Suggestions(suggestions).
				Value(&v.Client).
				Validate(required("client name")),
			huh.NewInput().
				Title("Description").
				Value(&v.Description),
			huh.NewSelect[string]().
				Title("Kind").
				Description("Complex projects derive budget and deadline from their tasks").
				Options(
					huh.NewOption("Single", string(domain.KindSingle)),
					huh.NewOption("Complex", string(domain.KindComplex)),
				).
				Value(&v.Kind),
			huh.NewConfirm().
				Title("Urgent?").
				Value(&v.Urgent),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Budget").
				Description("Dots are optional: 1.500.000").
				Value(&v.Budget),
			huh.NewInput().
				Title("Deadline").
				Description("Shorthand such as 134 or 13/4/25; empty means today").
				Value(&v.Deadline),
		).WithHideFunc(func() bool { return v.Kind == string(domain.KindComplex) }),
		huh.NewGroup(
			huh.NewText().
				Title("Tasks").
				Description("One per line: title - date - amount").
				Value(&v.Tasks),
		).WithHideFunc(func() bool { return v.Kind != string(domain.KindComplex) }),
	).WithTheme(freeflowHuhTheme()).WithShowHelp(false)
}

// buildProject turns collected values into a project ready for Create.
func (v projectFormValues) buildProject(app *App) (*domain.Project, error) {
	now := app.now()
	kind, err := domain.ParseProjectKind(v.Kind)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		Name:        v.Name,
		ClientName:  v.Client,
		Description: strings.TrimSpace(v.Description),
		Kind:        kind,
		Urgent:      v.Urgent,
		Budget:      smart.ParseNumber(v.Budget),
	}
	if strings.TrimSpace(v.Deadline) != "" {
		d, ok := smart.ResolveDate(strings.TrimSpace(v.Deadline), now)
		if !ok {
			return nil, fmt.Errorf("invalid deadline %q", v.Deadline)
		}
		if _, valid := domain.ParseDate(d); !valid {
			return nil, fmt.Errorf("invalid deadline %q", v.Deadline)
		}
		p.Deadline = d
	}
	if kind == domain.KindComplex {
		p.Tasks = smart.ParseTaskLines(v.Tasks, 0, now)
	}
	return p, nil
}
