package dashboard

import (
	"math"

	"github.com/alexanderramin/freeflow/internal/domain"
)

// Stats summarises revenue and progress across projects.
type Stats struct {
	TotalEarned            int64
	PendingAmount          int64
	OverdueAmount          int64
	OverallProgressPercent float64
	ActiveCount            int
	TotalTasks             int
	CompletedTasks         int
}

// ComputeStats aggregates projects. PendingAmount counts only Pending
// invoices; Overdue ones are reported separately in OverdueAmount.
func ComputeStats(projects []domain.Project) Stats {
	var s Stats
	for i := range projects {
		p := &projects[i]
		switch p.PaymentStatus {
		case domain.PaymentPaid:
			s.TotalEarned += p.Budget
		case domain.PaymentPending:
			s.PendingAmount += p.Budget
		case domain.PaymentOverdue:
			s.OverdueAmount += p.Budget
		}
		if p.Status != domain.StatusCompleted {
			s.ActiveCount++
		}
		s.TotalTasks += len(p.Tasks)
		s.CompletedTasks += p.CompletedTasks()
	}
	if s.TotalTasks > 0 {
		s.OverallProgressPercent = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
	}
	return s
}

// ChartPoint is one bar of the budget/progress chart.
type ChartPoint struct {
	ProjectID string
	Label     string
	// BudgetMillions is the budget in millions of currency units.
	BudgetMillions float64
	ProgressPct    int
}

const (
	chartLabelMax  = 12
	chartLabelKeep = 10
)

// Chart builds one point per project in input order.
func Chart(projects []domain.Project) []ChartPoint {
	points := make([]ChartPoint, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		points = append(points, ChartPoint{
			ProjectID:      p.ID,
			Label:          shortLabel(p.Name),
			BudgetMillions: float64(p.Budget) / 1_000_000,
			ProgressPct:    int(math.Round(p.Progress())),
		})
	}
	return points
}

func shortLabel(name string) string {
	r := []rune(name)
	if len(r) > chartLabelMax {
		return string(r[:chartLabelKeep]) + "..."
	}
	return name
}

// WorkloadItem is the condensed per-project view handed to the advisor.
type WorkloadItem struct {
	Name           string `json:"name"`
	Deadline       string `json:"deadline"`
	Status         string `json:"status"`
	IsUrgent       bool   `json:"isUrgent"`
	TasksRemaining int    `json:"tasksRemaining"`
}

func WorkloadSummary(projects []domain.Project) []WorkloadItem {
	items := make([]WorkloadItem, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		items = append(items, WorkloadItem{
			Name:           p.Name,
			Deadline:       p.Deadline,
			Status:         string(p.Status),
			IsUrgent:       p.Urgent,
			TasksRemaining: p.RemainingTasks(),
		})
	}
	return items
}
