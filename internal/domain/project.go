package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID            string        `json:"id" yaml:"id"`
	ClientName    string        `json:"clientName" yaml:"client_name"`
	ClientColor   string        `json:"clientColor,omitempty" yaml:"client_color,omitempty"`
	Name          string        `json:"projectName" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Status        ProjectStatus `json:"status" yaml:"status"`
	Deadline      string        `json:"deadline" yaml:"deadline"`
	Budget        int64         `json:"budget" yaml:"budget"`
	Tasks         []Task        `json:"tasks" yaml:"tasks"`
	PaymentStatus PaymentStatus `json:"paymentStatus" yaml:"payment_status"`
	CreatedAt     string        `json:"createdAt" yaml:"created_at"`
	Urgent        bool          `json:"isUrgent" yaml:"urgent"`
	Kind          ProjectKind   `json:"type" yaml:"kind"`
	UpdatedAt     time.Time     `json:"updatedAt" yaml:"updated_at"`
}

// kindRules holds the per-variant invariants of a project.
type kindRules interface {
	// reconcile restores the variant's invariants after a task mutation.
	reconcile(p *Project)
	// totalsEditable reports whether budget and deadline may be set directly.
	totalsEditable(p *Project) bool
}

type singleRules struct{}

func (singleRules) reconcile(*Project)            {}
func (singleRules) totalsEditable(*Project) bool { return true }

// complexRules keeps budget equal to the sum of task budgets and the
// deadline equal to the latest valid task due date.
type complexRules struct{}

func (complexRules) reconcile(p *Project) {
	t := DeriveTotals(p.Tasks, p.Deadline)
	p.Budget = t.Budget
	p.Deadline = t.Deadline
}

func (complexRules) totalsEditable(p *Project) bool { return len(p.Tasks) == 0 }

func (p *Project) rules() kindRules {
	if p.Kind == KindComplex {
		return complexRules{}
	}
	return singleRules{}
}

// IsComplex reports whether budget and deadline are derived from tasks.
func (p *Project) IsComplex() bool { return p.Kind == KindComplex }

// Reconcile re-applies the project's kind rules. Stores call it after
// loading so that imported or hand-edited data satisfies the invariants.
func (p *Project) Reconcile() {
	if p.IsComplex() && len(p.Tasks) == 0 {
		return
	}
	p.rules().reconcile(p)
}

// FillDefaults sets enum fields that older snapshots left empty.
func (p *Project) FillDefaults() {
	if p.Status == "" {
		p.Status = StatusPlanning
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentPending
	}
	if p.Kind == "" {
		p.Kind = KindSingle
	}
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.TrimSpace(p.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", p.Budget)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: project status %q", ErrInvalidStatus, p.Status)
	}
	if !p.PaymentStatus.Valid() {
		return fmt.Errorf("%w: payment status %q", ErrInvalidStatus, p.PaymentStatus)
	}
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: project kind %q", ErrInvalidStatus, p.Kind)
	}
	for _, t := range p.Tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
	}
	return nil
}

// DisplayID truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

func (p *Project) taskIndex(id string) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Task returns a copy of the task with the given id.
func (p *Project) Task(id string) (Task, bool) {
	i := p.taskIndex(id)
	if i < 0 {
		return Task{}, false
	}
	return p.Tasks[i], true
}

// AddTask appends t, preserving insertion order.
func (p *Project) AddTask(t Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.Tasks = append(p.Tasks, t)
	p.rules().reconcile(p)
	return nil
}

func (p *Project) UpdateTask(id string, patch TaskPatch) error {
	i := p.taskIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	updated := p.Tasks[i]
	updated.Apply(patch)
	if err := updated.Validate(); err != nil {
		return err
	}
	p.Tasks[i] = updated
	p.rules().reconcile(p)
	return nil
}

func (p *Project) ToggleTask(id string) error {
	i := p.taskIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	p.Tasks[i].Completed = !p.Tasks[i].Completed
	p.rules().reconcile(p)
	return nil
}

func (p *Project) RemoveTask(id string) error {
	i := p.taskIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	p.Tasks = append(p.Tasks[:i:i], p.Tasks[i+1:]...)
	p.rules().reconcile(p)
	return nil
}

// CompleteAllTasks marks every task completed.
func (p *Project) CompleteAllTasks() {
	for i := range p.Tasks {
		p.Tasks[i].Completed = true
	}
}

// SetStatus changes the workflow status. Moving to Completed completes every
// task; moving away from Completed leaves tasks as they are.
func (p *Project) SetStatus(s ProjectStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: project status %q", ErrInvalidStatus, s)
	}
	p.Status = s
	if s == StatusCompleted {
		p.CompleteAllTasks()
	}
	return nil
}

// TogglePayment flips Paid and Pending. An overdue invoice toggles to Paid.
func (p *Project) TogglePayment() {
	if p.PaymentStatus == PaymentPaid {
		p.PaymentStatus = PaymentPending
		return
	}
	p.PaymentStatus = PaymentPaid
}

func (p *Project) SetPayment(s PaymentStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: payment status %q", ErrInvalidStatus, s)
	}
	p.PaymentStatus = s
	return nil
}

func (p *Project) ToggleUrgent() { p.Urgent = !p.Urgent }

// SetBudget edits the budget directly. Complex projects with tasks refuse.
func (p *Project) SetBudget(b int64) error {
	if !p.rules().totalsEditable(p) {
		return fmt.Errorf("%w: budget", ErrDerivedField)
	}
	if b < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", b)
	}
	p.Budget = b
	return nil
}

// SetDeadline edits the deadline directly. Complex projects with tasks refuse.
func (p *Project) SetDeadline(d string) error {
	if !p.rules().totalsEditable(p) {
		return fmt.Errorf("%w: deadline", ErrDerivedField)
	}
	p.Deadline = d
	return nil
}

// CompletedTasks counts completed tasks.
func (p *Project) CompletedTasks() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// RemainingTasks counts tasks not yet completed.
func (p *Project) RemainingTasks() int {
	return len(p.Tasks) - p.CompletedTasks()
}

// Progress returns the completed share of tasks in percent, 0 without tasks.
func (p *Project) Progress() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	return float64(p.CompletedTasks()) / float64(len(p.Tasks)) * 100
}

// Clone returns a deep copy so callers can mutate tasks freely.
func (p *Project) Clone() *Project {
	c := *p
	if p.Tasks != nil {
		c.Tasks = make([]Task, len(p.Tasks))
		copy(c.Tasks, p.Tasks)
	}
	return &c
}
