package service

import (
	"context"
	"io"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/repository"
)

// ProjectPatch is a partial project edit; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	ClientName  *string
	Deadline    *string
	Budget      *int64
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns the projects matching filter, ordered by key.
	List(ctx context.Context, filter dashboard.Filter, key dashboard.SortKey) ([]domain.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	TogglePayment(ctx context.Context, id string) (*domain.Project, error)
	SetPayment(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Project, error)
	ToggleUrgent(ctx context.Context, id string) (*domain.Project, error)
	CompleteAllTasks(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	// QuickAdd parses a "title - date - amount" line and appends the task.
	QuickAdd(ctx context.Context, projectID, line string) (*domain.Task, error)
	// AddTitle appends a task due today with a random palette colour.
	AddTitle(ctx context.Context, projectID, title string) (*domain.Task, error)
	Update(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (*domain.Project, error)
	Toggle(ctx context.Context, projectID, taskID string) (*domain.Project, error)
	Delete(ctx context.Context, projectID, taskID string) (*domain.Project, error)
}

type ClientService interface {
	// Create registers a client. An empty color picks the next palette colour.
	Create(ctx context.Context, name, color string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// Overview is everything the stats screen shows.
type Overview struct {
	Stats    dashboard.Stats
	Urgent   []domain.Project
	Chart    []dashboard.ChartPoint
	Projects []domain.Project
}

type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	Clients  int
	Projects int
	Replaced bool
}

type ExportService interface {
	Export(ctx context.Context, w io.Writer, f repository.Format) error
	// Import loads a snapshot. With replace, existing data is discarded;
	// otherwise the snapshot is merged and clashing ids fail the whole import.
	Import(ctx context.Context, r io.Reader, f repository.Format, replace bool) (*ImportResult, error)
}
