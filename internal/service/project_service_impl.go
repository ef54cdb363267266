package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	clock    func() time.Time
}

// NewProjectService creates a ProjectService. A nil clock means time.Now.
func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, clock func() time.Time, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		clock:    clockOrNow(clock),
	}
}

func clockOrNow(clock func() time.Time) func() time.Time {
	if clock == nil {
		return time.Now
	}
	return clock
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) (err error) {
	fields := map[string]any{"project": p.Name}
	defer observe(ctx, s.observer, "create-project", fields, &err)()

	now := s.clock().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Name = strings.TrimSpace(p.Name)
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.FillDefaults()
	if p.Deadline == "" {
		p.Deadline = now.Format(domain.DateLayout)
	}
	if p.CreatedAt == "" {
		p.CreatedAt = now.Format(time.RFC3339)
	}
	p.UpdatedAt = now
	for i := range p.Tasks {
		if p.Tasks[i].ID == "" {
			p.Tasks[i].ID = uuid.New().String()
		}
		if p.Tasks[i].Color == "" {
			p.Tasks[i].Color = domain.PaletteColor(i)
		}
	}
	p.Reconcile()
	fields["tasks"] = len(p.Tasks)

	if err = p.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if p.ClientColor == "" {
			c, err := repository.NewSQLiteClientRepo(tx).FindByName(ctx, p.ClientName)
			switch {
			case err == nil:
				p.ClientColor = c.Color
			case !errors.Is(err, domain.ErrNotFound):
				return err
			}
		}
		return repository.NewSQLiteProjectRepo(tx).Create(ctx, p)
	})
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, filter dashboard.Filter, key dashboard.SortKey) ([]domain.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.FilterAndSort(derefProjects(all), filter, key), nil
}

func (s *projectService) Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error) {
	return s.mutate(ctx, "update-project", id, func(p *domain.Project) error {
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ClientName != nil {
			p.ClientName = strings.TrimSpace(*patch.ClientName)
		}
		if patch.Deadline != nil {
			if _, ok := domain.ParseDate(*patch.Deadline); !ok {
				return fmt.Errorf("invalid deadline %q, want YYYY-MM-DD", *patch.Deadline)
			}
			if err := p.SetDeadline(*patch.Deadline); err != nil {
				return err
			}
		}
		if patch.Budget != nil {
			if err := p.SetBudget(*patch.Budget); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *projectService) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	return s.mutate(ctx, "set-status", id, func(p *domain.Project) error {
		return p.SetStatus(status)
	})
}

func (s *projectService) TogglePayment(ctx context.Context, id string) (*domain.Project, error) {
	return s.mutate(ctx, "toggle-payment", id, func(p *domain.Project) error {
		p.TogglePayment()
		return nil
	})
}

func (s *projectService) SetPayment(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Project, error) {
	return s.mutate(ctx, "set-payment", id, func(p *domain.Project) error {
		return p.SetPayment(status)
	})
}

func (s *projectService) ToggleUrgent(ctx context.Context, id string) (*domain.Project, error) {
	return s.mutate(ctx, "toggle-urgent", id, func(p *domain.Project) error {
		p.ToggleUrgent()
		return nil
	})
}

func (s *projectService) CompleteAllTasks(ctx context.Context, id string) (*domain.Project, error) {
	return s.mutate(ctx, "complete-all-tasks", id, func(p *domain.Project) error {
		p.CompleteAllTasks()
		return nil
	})
}

func (s *projectService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-project", map[string]any{"project_id": id}, &err)()
	return s.projects.Delete(ctx, id)
}

func (s *projectService) mutate(ctx context.Context, name, id string, fn func(p *domain.Project) error) (*domain.Project, error) {
	return mutateProject(ctx, s.uow, s.observer, s.clock, name, id, fn)
}

// mutateProject loads a project inside one transaction, applies fn, checks
// the result and writes it back with its full task list.
func mutateProject(
	ctx context.Context,
	uow db.UnitOfWork,
	observer UseCaseObserver,
	clock func() time.Time,
	name, id string,
	fn func(p *domain.Project) error,
) (out *domain.Project, err error) {
	defer observe(ctx, observer, name, map[string]any{"project_id": id}, &err)()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		p.UpdatedAt = clock().UTC()
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func derefProjects(in []*domain.Project) []domain.Project {
	out := make([]domain.Project, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
