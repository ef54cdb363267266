package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/freeflow/internal/domain"
)

// FormatProjectList renders projects as a table inside a bordered box.
func FormatProjectList(projects []domain.Project, now time.Time) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects yet. Add one with `freeflow project add`."))
	}

	headers := []string{"ID", "", "PROJECT", "CLIENT", "STATUS", "PAYMENT", "BUDGET", "DUE", "PROGRESS"}
	rows := make([][]string, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		done := p.Status == domain.StatusCompleted
		rows = append(rows, []string{
			TruncID(p.ID),
			UrgentBadge(p.Urgent),
			Bold(p.Name),
			Swatch(p.ClientColor) + " " + p.ClientName,
			StatusPill(p.Status),
			PaymentPill(p.PaymentStatus),
			Money(p.Budget),
			DeadlineStyled(p.Deadline, now, done),
			progressCell(p),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

func progressCell(p *domain.Project) string {
	if len(p.Tasks) == 0 {
		return Dim("--")
	}
	return RenderProgress(p.Progress()/100, 10)
}

// FormatProjectDetail renders one project with its metadata beside its tasks.
func FormatProjectDetail(p *domain.Project, now time.Time) string {
	left := projectMeta(p, now)
	right := taskList(p.Tasks, now)
	return RenderBox("", lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func projectMeta(p *domain.Project, now time.Time) string {
	var b strings.Builder
	b.WriteString(UrgentBadge(p.Urgent) + " " + StyleBold.Render(p.Name) + "\n")
	b.WriteString(Swatch(p.ClientColor) + " " + p.ClientName + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	field("ID", TruncID(p.ID))
	field("KIND", KindBadge(p.Kind))
	field("STATUS", StatusPill(p.Status))
	field("PAYMENT", PaymentPill(p.PaymentStatus))
	field("BUDGET", StyleFg.Render(Money(p.Budget)))
	field("DEADLINE", fmt.Sprintf("%s %s", p.Deadline, DeadlineStyled(p.Deadline, now, p.Status == domain.StatusCompleted)))
	if len(p.Tasks) > 0 {
		field("PROGRESS", RenderProgress(p.Progress()/100, 12))
	}
	if p.Description != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(40).Render(p.Description) + "\n")
	}
	return b.String()
}

func taskList(tasks []domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks")
	}
	var b strings.Builder
	b.WriteString(StyleHeader.Render("TASKS") + "\n")
	for i, t := range tasks {
		title := t.Title
		if t.Completed {
			title = StyleDim.Strikethrough(true).Render(title)
		}
		line := fmt.Sprintf("%2d %s %s %s", i+1, Checkbox(t.Completed), Swatch(t.Color), title)
		meta := []string{DeadlineStyled(t.DueDate, now, t.Completed)}
		if t.Budget > 0 {
			meta = append(meta, Dim(Money(t.Budget)))
		}
		b.WriteString(line + "  " + strings.Join(meta, Dim(" · ")) + "\n")
	}
	return b.String()
}
