package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used throughout FreeFlow.
const DateLayout = "2006-01-02"

// Task is a sub-task owned by exactly one Project.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	DueDate   string `json:"dueDate" yaml:"due_date"`
	Completed bool   `json:"completed" yaml:"completed"`
	Color     string `json:"color,omitempty" yaml:"color,omitempty"`
	Budget    int64  `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// TaskPatch is a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title     *string
	DueDate   *string
	Completed *bool
	Budget    *int64
	Color     *string
}

// Apply merges the non-nil fields of p into t.
func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Budget < 0 {
		return fmt.Errorf("task budget must be non-negative, got %d", t.Budget)
	}
	return nil
}

// Due returns the parsed due date. ok is false for values that are not a
// real calendar date.
func (t Task) Due() (time.Time, bool) {
	return ParseDate(t.DueDate)
}

// ParseDate parses a canonical YYYY-MM-DD date. Impossible dates such as
// 2025-02-31 are rejected.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Totals are the budget and deadline derived from a task list.
type Totals struct {
	Deadline string
	Budget   int64
}

// DeriveTotals sums task budgets and picks the latest valid due date.
// When no task has a valid due date the fallback deadline is kept.
func DeriveTotals(tasks []Task, fallbackDeadline string) Totals {
	out := Totals{Deadline: fallbackDeadline}
	var latest time.Time
	found := false
	for _, t := range tasks {
		out.Budget += t.Budget
		d, ok := t.Due()
		if !ok {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	if found {
		out.Deadline = latest.Format(DateLayout)
	}
	return out
}
