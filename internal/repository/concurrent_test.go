package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB opens a file-backed store. Unlike :memory:, every
// pooled connection sees the same data.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite lists projects while another
// goroutine creates complex projects transactionally. Readers must never see
// a project whose budget disagrees with its tasks.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	const projectCount = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < projectCount; i++ {
			p := testutil.NewTestProject(fmt.Sprintf("Project-%d", i),
				testutil.WithTasks(
					testutil.NewTestTask("Design", testutil.WithDue("2025-05-01"), testutil.WithTaskBudget(1_000)),
					testutil.NewTestTask("Build", testutil.WithDue("2025-06-01"), testutil.WithTaskBudget(2_000)),
				),
			)
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteProjectRepo(tx).Create(ctx, p)
			})
			if err != nil {
				t.Errorf("writer: create project %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				projects, err := repo.List(ctx)
				if err != nil {
					t.Errorf("reader %d: list: %v", reader, err)
					return
				}
				for _, p := range projects {
					if len(p.Tasks) != 2 || p.Budget != 3_000 {
						t.Errorf("reader %d: half-written project %s: %d tasks, budget %d",
							reader, p.Name, len(p.Tasks), p.Budget)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, projectCount)
}

// TestConcurrentAccess_DeleteCascadesOnPooledConns deletes from several
// goroutines and checks that no task rows outlive their project, whichever
// pooled connection ran the delete.
func TestConcurrentAccess_DeleteCascadesOnPooledConns(t *testing.T) {
	database := newConcurrentTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 10; i++ {
		p := testutil.NewTestProject(fmt.Sprintf("Project-%d", i),
			testutil.WithTasks(testutil.NewTestTask("Only task")))
		require.NoError(t, repo.Create(ctx, p))
		ids = append(ids, p.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := repo.Delete(ctx, id); err != nil {
				t.Errorf("delete %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	var tasks int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&tasks))
	assert.Zero(t, tasks)

	_, err := repo.GetByID(ctx, ids[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
