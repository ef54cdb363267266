package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/freeflow/internal/domain"
)

// ProjectRepo persists projects together with their ordered tasks.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects in creation order.
	List(ctx context.Context) ([]*domain.Project, error)
	// Update rewrites the project row and replaces its task list.
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// FindByName matches case-insensitively and returns the oldest match.
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// CollectionVersion is bumped whenever the snapshot layout changes.
const CollectionVersion = 7

// Collection is the full persisted state, as moved by export and import.
type Collection struct {
	Version    int              `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exportedAt" yaml:"exported_at"`
	Clients    []domain.Client  `json:"clients" yaml:"clients"`
	Projects   []domain.Project `json:"projects" yaml:"projects"`
}

// Store loads and saves a whole Collection at once.
type Store interface {
	Load(ctx context.Context) (*Collection, error)
	Save(ctx context.Context, c *Collection) error
}
