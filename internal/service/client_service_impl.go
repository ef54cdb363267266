package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/repository"
)

type clientService struct {
	clients  repository.ClientRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewClientService(clients repository.ClientRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ClientService {
	return &clientService{clients: clients, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *clientService) Create(ctx context.Context, name, color string) (c *domain.Client, err error) {
	defer observe(ctx, s.observer, "create-client", map[string]any{"client": name}, &err)()

	c = &domain.Client{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteClientRepo(tx)
		if _, err := repo.FindByName(ctx, c.Name); err == nil {
			return fmt.Errorf("client %q: %w", c.Name, domain.ErrDuplicate)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if c.Color == "" {
			existing, err := repo.List(ctx)
			if err != nil {
				return err
			}
			c.Color = domain.PaletteColor(len(existing))
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

// Delete removes the client record only; projects keep their copy of the
// client's name and colour.
func (s *clientService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-client", map[string]any{"client_id": id}, &err)()
	return s.clients.Delete(ctx, id)
}
