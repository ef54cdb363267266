package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/freeflow/internal/db"
)

// SQLiteStore adapts the relational tables to the whole-collection Store
// contract. Save replaces everything in one transaction.
type SQLiteStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteStore(d db.DBTX, uow db.UnitOfWork) *SQLiteStore {
	return &SQLiteStore{db: d, uow: uow}
}

func (s *SQLiteStore) Load(ctx context.Context) (*Collection, error) {
	clients, err := NewSQLiteClientRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := NewSQLiteProjectRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	c := &Collection{Version: CollectionVersion, ExportedAt: time.Now().UTC()}
	for _, cl := range clients {
		c.Clients = append(c.Clients, *cl)
	}
	for _, p := range projects {
		c.Projects = append(c.Projects, *p)
	}
	return c, nil
}

func (s *SQLiteStore) Save(ctx context.Context, c *Collection) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
			return fmt.Errorf("clearing projects: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM clients`); err != nil {
			return fmt.Errorf("clearing clients: %w", err)
		}
		return Merge(ctx, tx, c)
	})
}

// Merge inserts the collection's clients and projects into tx without
// clearing existing rows. Ids already present are rejected by the schema.
func Merge(ctx context.Context, tx db.DBTX, c *Collection) error {
	clients := NewSQLiteClientRepo(tx)
	for i := range c.Clients {
		if err := clients.Create(ctx, &c.Clients[i]); err != nil {
			return err
		}
	}
	projects := NewSQLiteProjectRepo(tx)
	for i := range c.Projects {
		if err := projects.Create(ctx, &c.Projects[i]); err != nil {
			return fmt.Errorf("project %q: %w", c.Projects[i].Name, err)
		}
	}
	return nil
}
