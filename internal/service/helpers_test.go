package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/repository"
	"github.com/alexanderramin/freeflow/internal/testutil"
)

type fixture struct {
	db       *sql.DB
	uow      db.UnitOfWork
	projects repository.ProjectRepo
	clients  repository.ClientRepo
}

func setup(t *testing.T) fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return fixture{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		projects: repository.NewSQLiteProjectRepo(database),
		clients:  repository.NewSQLiteClientRepo(database),
	}
}

func (f fixture) seed(t *testing.T, p *domain.Project) *domain.Project {
	t.Helper()
	require.NoError(t, f.projects.Create(context.Background(), p))
	return p
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func ptr[T any](v T) *T { return &v }
