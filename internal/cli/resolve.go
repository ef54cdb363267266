package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
)

// resolveProjectID accepts a full id, a unique id prefix, or a unique
// project name (case-insensitive).
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, dashboard.FilterAll, dashboard.SortNone)
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. ID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	// 3. Project name
	if len(matches) == 0 {
		for _, p := range projects {
			if strings.EqualFold(p.Name, input) {
				matches = append(matches, p.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID accepts a 1-based position in the task list, a full id, or
// a unique id prefix.
func resolveTaskID(p *domain.Project, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(p.Tasks) {
			return "", fmt.Errorf("task #%d out of range (project has %d tasks)", n, len(p.Tasks))
		}
		return p.Tasks[n-1].ID, nil
	}

	if _, ok := p.Task(input); ok {
		return input, nil
	}

	var matches []string
	for _, t := range p.Tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
