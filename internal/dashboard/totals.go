// Package dashboard derives read-only views over projects: totals, revenue
// statistics, filtered and sorted lists, and the urgent queue.
package dashboard

import (
	"time"

	"github.com/alexanderramin/freeflow/internal/domain"
)

// Totals is the budget and deadline implied by a task list.
type Totals = domain.Totals

// DeriveProjectTotals sums task budgets and takes the latest valid due date,
// keeping fallbackDeadline when no task carries one. An empty list yields a
// zero budget.
func DeriveProjectTotals(tasks []domain.Task, fallbackDeadline string) Totals {
	return domain.DeriveTotals(tasks, fallbackDeadline)
}

// ParseISODate parses a YYYY-MM-DD date.
func ParseISODate(s string) (time.Time, bool) {
	return domain.ParseDate(s)
}

// ParseTimestamp parses a creation timestamp. RFC3339 with or without
// fractional seconds is accepted, as is a bare date.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", domain.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
