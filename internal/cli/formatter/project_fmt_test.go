package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
)

func sampleProjects() []domain.Project {
	return []domain.Project{
		{
			ID: "abcdef12-3456", ClientName: "Acme", ClientColor: "#10b981", Name: "Website",
			Status: domain.StatusInProgress, PaymentStatus: domain.PaymentPending, Kind: domain.KindComplex,
			Deadline: "2025-03-20", Budget: 2_500_000, Urgent: true,
			Tasks: []domain.Task{
				{ID: "t1", Title: "Design", DueDate: "2025-03-16", Budget: 1_000_000, Completed: true},
				{ID: "t2", Title: "Build", DueDate: "2025-03-20", Budget: 1_500_000},
			},
		},
		{
			ID: "99887766-0000", ClientName: "Globex", Name: "Logo",
			Status: domain.StatusCompleted, PaymentStatus: domain.PaymentPaid, Kind: domain.KindSingle,
			Deadline: "2025-02-01", Budget: 800_000,
		},
	}
}

func TestFormatProjectList(t *testing.T) {
	out := FormatProjectList(sampleProjects(), refNow)
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "2.500.000 ₫")
	assert.Contains(t, out, "In 5d")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "Completed")

	assert.Contains(t, FormatProjectList(nil, refNow), "No projects yet")
}

func TestFormatProjectDetail(t *testing.T) {
	p := sampleProjects()[0]
	out := FormatProjectDetail(&p, refNow)
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "complex")
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "Tomorrow")

	single := sampleProjects()[1]
	assert.Contains(t, FormatProjectDetail(&single, refNow), "No tasks")
}

func TestFormatStatsAndChart(t *testing.T) {
	projects := sampleProjects()
	stats := FormatStats(dashboard.ComputeStats(projects))
	assert.Contains(t, stats, "EARNED")
	assert.Contains(t, stats, "800.000 ₫")
	assert.Contains(t, stats, "1/2")

	chart := FormatChart(dashboard.Chart(projects))
	assert.Contains(t, chart, "Website")
	assert.Contains(t, chart, "2.5")
	assert.Contains(t, chart, "50%")
	assert.Contains(t, FormatChart(nil), "No data.")

	urgent := FormatUrgentQueue(dashboard.UrgentQueue(projects, 5), refNow)
	assert.Contains(t, urgent, "Website")
	assert.NotContains(t, urgent, "Logo")
}

func TestFormatAdvice(t *testing.T) {
	out := FormatAdvice([]string{"Ship it", "Bill it"}, "deterministic")
	assert.Contains(t, out, "1. Ship it")
	assert.Contains(t, out, "2. Bill it")
	assert.Contains(t, out, "rule-based")
}
