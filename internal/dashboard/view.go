package dashboard

import (
	"sort"
	"strings"

	"github.com/alexanderramin/freeflow/internal/domain"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterUrgent    Filter = "urgent"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in the order the UI cycles through them.
var Filters = []Filter{FilterAll, FilterUrgent, FilterActive, FilterCompleted}

type SortKey string

const (
	SortNone         SortKey = "none"
	SortDeadlineAsc  SortKey = "deadline-asc"
	SortDeadlineDesc SortKey = "deadline-desc"
	SortBudgetDesc   SortKey = "budget-desc"
	SortNewest       SortKey = "newest"
)

var SortKeys = []SortKey{SortNone, SortDeadlineAsc, SortDeadlineDesc, SortBudgetDesc, SortNewest}

// ParseFilter is lenient: unknown names select FilterAll.
func ParseFilter(s string) Filter {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Filters {
		if f == known {
			return f
		}
	}
	return FilterAll
}

// ParseSortKey is lenient: unknown names keep input order.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortKeys {
		if k == known {
			return k
		}
	}
	return SortNone
}

func (f Filter) match(p *domain.Project) bool {
	switch f {
	case FilterUrgent:
		return p.Urgent
	case FilterActive:
		return p.Status != domain.StatusCompleted
	case FilterCompleted:
		return p.Status == domain.StatusCompleted
	default:
		return true
	}
}

// FilterAndSort returns a new slice; projects is never reordered. The sort
// is stable, and deadlines or timestamps that cannot be parsed sort last.
func FilterAndSort(projects []domain.Project, filter Filter, key SortKey) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for i := range projects {
		if filter.match(&projects[i]) {
			out = append(out, projects[i])
		}
	}

	switch key {
	case SortDeadlineAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return lessDate(out[i].Deadline, out[j].Deadline, false)
		})
	case SortDeadlineDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return lessDate(out[i].Deadline, out[j].Deadline, true)
		})
	case SortBudgetDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Budget > out[j].Budget
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			a, okA := ParseTimestamp(out[i].CreatedAt)
			b, okB := ParseTimestamp(out[j].CreatedAt)
			if okA != okB {
				return okA
			}
			return okA && a.After(b)
		})
	}
	return out
}

// lessDate orders ISO dates, placing unparseable values after valid ones
// regardless of direction.
func lessDate(a, b string, desc bool) bool {
	da, okA := ParseISODate(a)
	db, okB := ParseISODate(b)
	if okA != okB {
		return okA
	}
	if !okA {
		return false
	}
	if desc {
		return da.After(db)
	}
	return da.Before(db)
}

// UrgentQueue lists urgent, unfinished projects by nearest deadline, at most
// limit entries. limit <= 0 means no limit.
func UrgentQueue(projects []domain.Project, limit int) []domain.Project {
	urgent := make([]domain.Project, 0)
	for i := range projects {
		p := &projects[i]
		if p.Urgent && p.Status != domain.StatusCompleted {
			urgent = append(urgent, *p)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return lessDate(urgent[i].Deadline, urgent[j].Deadline, false)
	})
	if limit > 0 && len(urgent) > limit {
		urgent = urgent[:limit]
	}
	return urgent
}
