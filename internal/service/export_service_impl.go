package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/repository"
)

type exportService struct {
	store    repository.Store
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewExportService moves whole snapshots between store and files. Merging
// imports run through uow so a clash leaves the store untouched.
func NewExportService(store repository.Store, uow db.UnitOfWork, observers ...UseCaseObserver) ExportService {
	return &exportService{store: store, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, w io.Writer, f repository.Format) (err error) {
	fields := map[string]any{"format": string(f)}
	defer observe(ctx, s.observer, "export", fields, &err)()

	c, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	c.Version = repository.CollectionVersion
	c.ExportedAt = time.Now().UTC()
	fields["projects"] = len(c.Projects)
	return repository.Encode(w, c, f)
}

func (s *exportService) Import(ctx context.Context, r io.Reader, f repository.Format, replace bool) (result *ImportResult, err error) {
	fields := map[string]any{"format": string(f), "replace": replace}
	defer observe(ctx, s.observer, "import", fields, &err)()

	c, err := repository.Decode(r, f)
	if err != nil {
		return nil, err
	}
	for i := range c.Projects {
		if err := c.Projects[i].Validate(); err != nil {
			return nil, fmt.Errorf("project %q: %w", c.Projects[i].Name, err)
		}
	}
	fields["projects"] = len(c.Projects)

	if replace {
		err = s.store.Save(ctx, c)
	} else {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.Merge(ctx, tx, c)
		})
	}
	if err != nil {
		return nil, err
	}
	return &ImportResult{Clients: len(c.Clients), Projects: len(c.Projects), Replaced: replace}, nil
}
