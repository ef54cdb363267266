package intelligence

import (
	"fmt"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
)

// DeterministicAdvice builds three recommendations from the data alone:
// what to work on first, which deadline is closest, and how much money is
// still outstanding.
func DeterministicAdvice(projects []domain.Project) *Advice {
	advice := &Advice{Source: SourceDeterministic}

	queue := dashboard.UrgentQueue(projects, 1)
	if len(queue) > 0 {
		p := queue[0]
		advice.Points = append(advice.Points, fmt.Sprintf(
			"Start with %q for %s: it is marked urgent and has %d open tasks.",
			p.Name, p.ClientName, p.RemainingTasks()))
	} else {
		advice.Points = append(advice.Points, "Nothing is marked urgent. Flag the project that matters most this week so it stays on top.")
	}

	active := dashboard.FilterAndSort(projects, dashboard.FilterActive, dashboard.SortDeadlineAsc)
	if next := firstDated(active); next != nil {
		advice.Points = append(advice.Points, fmt.Sprintf(
			"The nearest deadline is %q on %s. Block time for it before taking new work.",
			next.Name, next.Deadline))
	} else {
		advice.Points = append(advice.Points, "No active project has a deadline. Agree on dates with your clients.")
	}

	stats := dashboard.ComputeStats(projects)
	switch {
	case stats.OverdueAmount > 0:
		advice.Points = append(advice.Points, fmt.Sprintf(
			"%s is overdue. Follow up on those invoices first.", smart.FormatMoney(stats.OverdueAmount)))
	case stats.PendingAmount > 0:
		advice.Points = append(advice.Points, fmt.Sprintf(
			"%s is still pending. Send invoices as soon as work is delivered.", smart.FormatMoney(stats.PendingAmount)))
	default:
		advice.Points = append(advice.Points, "All invoices are settled. Keep it that way by billing on delivery.")
	}
	return advice
}

func firstDated(projects []domain.Project) *domain.Project {
	for i := range projects {
		if _, ok := dashboard.ParseISODate(projects[i].Deadline); ok {
			return &projects[i]
		}
	}
	return nil
}
