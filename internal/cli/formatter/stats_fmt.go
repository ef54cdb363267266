package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
)

const chartBarWidth = 24

// FormatStats renders the revenue and progress cards side by side.
func FormatStats(s dashboard.Stats) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)

	cards := []string{
		card.Render(Dim("EARNED") + "\n" + StyleGreen.Render(Money(s.TotalEarned))),
		card.Render(Dim("PENDING") + "\n" + StyleYellow.Render(Money(s.PendingAmount))),
		card.Render(Dim("OVERDUE") + "\n" + StyleRed.Render(Money(s.OverdueAmount))),
		card.Render(Dim("ACTIVE") + "\n" + StyleBold.Render(fmt.Sprintf("%d projects", s.ActiveCount))),
		card.Render(Dim("TASKS") + "\n" + RenderProgress(s.OverallProgressPercent/100, 10) +
			Dim(fmt.Sprintf(" %d/%d", s.CompletedTasks, s.TotalTasks))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// FormatUrgentQueue lists urgent projects by nearest deadline.
func FormatUrgentQueue(projects []domain.Project, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Urgent") + "\n")
	if len(projects) == 0 {
		b.WriteString(Dim("Nothing urgent.") + "\n")
		return b.String()
	}
	for i := range projects {
		p := &projects[i]
		fmt.Fprintf(&b, "%s %s %s  %s\n",
			UrgentBadge(true),
			Bold(p.Name),
			Dim(p.ClientName),
			DeadlineStyled(p.Deadline, now, false))
	}
	return b.String()
}

// FormatChart draws one budget bar per project scaled to the largest
// budget, followed by its progress.
func FormatChart(points []dashboard.ChartPoint) string {
	var b strings.Builder
	b.WriteString(Header("Budget (millions)") + "\n")
	if len(points) == 0 {
		b.WriteString(Dim("No data.") + "\n")
		return b.String()
	}

	peak := 0.0
	labelWidth := 0
	for _, pt := range points {
		peak = max(peak, pt.BudgetMillions)
		labelWidth = max(labelWidth, lipgloss.Width(pt.Label))
	}
	for _, pt := range points {
		n := 0
		if peak > 0 {
			n = int(pt.BudgetMillions / peak * chartBarWidth)
		}
		bar := StyleIndigo.Render(strings.Repeat(filledBlock, n)) + strings.Repeat(" ", chartBarWidth-n)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(pt.Label))
		fmt.Fprintf(&b, "%s%s  %s %6.1f  %s\n", pt.Label, pad, bar, pt.BudgetMillions, Dim(fmt.Sprintf("%d%%", pt.ProgressPct)))
	}
	return b.String()
}

// FormatAdvice renders numbered advice with its origin.
func FormatAdvice(points []string, source string) string {
	var b strings.Builder
	for i, p := range points {
		fmt.Fprintf(&b, "%s %s\n", StyleIndigo.Render(fmt.Sprintf("%d.", i+1)), p)
	}
	footer := "generated by the model"
	if source != "llm" {
		footer = "rule-based; enable llm in freeflow.yaml for tailored advice"
	}
	b.WriteString("\n" + Dim(footer))
	return RenderBox("Advice", b.String())
}
