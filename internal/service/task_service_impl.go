package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
)

type taskService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	clock    func() time.Time
	rng      *rand.Rand
}

// NewTaskService creates a TaskService. Every task mutation rewrites the
// owning project in one transaction, so complex projects never persist
// stale totals. clock resolves "today" and the current year for shorthand
// dates; nil means time.Now.
func NewTaskService(uow db.UnitOfWork, clock func() time.Time, observers ...UseCaseObserver) TaskService {
	return &taskService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		clock:    clockOrNow(clock),
	}
}

func (s *taskService) QuickAdd(ctx context.Context, projectID, line string) (*domain.Task, error) {
	var added domain.Task
	_, err := s.mutate(ctx, "quick-add-task", projectID, func(p *domain.Project) error {
		t, ok := smart.ParseTaskLineFrom(line, len(p.Tasks), s.clock())
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrBlankTitle, line)
		}
		added = t
		return p.AddTask(t)
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *taskService) AddTitle(ctx context.Context, projectID, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrBlankTitle
	}
	t := domain.Task{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: smart.Today(s.clock()),
		Color:   domain.RandomColor(s.rng),
	}
	if _, err := s.mutate(ctx, "add-task", projectID, func(p *domain.Project) error {
		return p.AddTask(t)
	}); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Update(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (*domain.Project, error) {
	if patch.DueDate != nil {
		if _, ok := domain.ParseDate(*patch.DueDate); !ok {
			return nil, fmt.Errorf("invalid due date %q, want YYYY-MM-DD", *patch.DueDate)
		}
	}
	return s.mutate(ctx, "update-task", projectID, func(p *domain.Project) error {
		return p.UpdateTask(taskID, patch)
	})
}

func (s *taskService) Toggle(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	return s.mutate(ctx, "toggle-task", projectID, func(p *domain.Project) error {
		return p.ToggleTask(taskID)
	})
}

func (s *taskService) Delete(ctx context.Context, projectID, taskID string) (*domain.Project, error) {
	return s.mutate(ctx, "delete-task", projectID, func(p *domain.Project) error {
		return p.RemoveTask(taskID)
	})
}

func (s *taskService) mutate(ctx context.Context, name, id string, fn func(p *domain.Project) error) (*domain.Project, error) {
	return mutateProject(ctx, s.uow, s.observer, s.clock, name, id, fn)
}
