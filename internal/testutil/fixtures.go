package testutil

import (
	"time"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithClient(name, color string) ProjectOption {
	return func(p *domain.Project) {
		p.ClientName = name
		p.ClientColor = color
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithPayment(s domain.PaymentStatus) ProjectOption {
	return func(p *domain.Project) {
		p.PaymentStatus = s
	}
}

func WithDeadline(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Deadline = d
	}
}

func WithBudget(b int64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithUrgent() ProjectOption {
	return func(p *domain.Project) {
		p.Urgent = true
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t.UTC().Format(time.RFC3339)
	}
}

// WithTasks makes the project complex and derives its totals from tasks.
func WithTasks(tasks ...domain.Task) ProjectOption {
	return func(p *domain.Project) {
		p.Kind = domain.KindComplex
		p.Tasks = append(p.Tasks, tasks...)
		p.Reconcile()
	}
}

// NewTestProject builds a single-kind project due in a month.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:            uuid.New().String(),
		ClientName:    "Test Client",
		Name:          name,
		Status:        domain.StatusPlanning,
		Deadline:      now.AddDate(0, 1, 0).Format(domain.DateLayout),
		PaymentStatus: domain.PaymentPending,
		Kind:          domain.KindSingle,
		CreatedAt:     now.Format(time.RFC3339),
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithDue(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func WithTaskBudget(b int64) TaskOption {
	return func(t *domain.Task) {
		t.Budget = b
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: time.Now().UTC().Format(domain.DateLayout),
		Color:   domain.PaletteColor(0),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func NewTestClient(name string) *domain.Client {
	return &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     domain.PaletteColor(1),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
