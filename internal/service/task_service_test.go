package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/testutil"
)

var march15 = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

func newTaskService(f fixture) *taskService {
	return NewTaskService(f.uow, fixedClock(march15)).(*taskService)
}

func TestTaskService_QuickAdd_RederivesComplexTotals(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := f.seed(t, testutil.NewTestProject("Portal", testutil.WithTasks(
		testutil.NewTestTask("Design", testutil.WithDue("2025-04-01"), testutil.WithTaskBudget(1_000_000)),
	)))
	svc := newTaskService(f)

	task, err := svc.QuickAdd(ctx, p.ID, "Build API - 2005 - 2.500.000")
	require.NoError(t, err)
	assert.Equal(t, "Build API", task.Title)
	assert.Equal(t, "2025-05-20", task.DueDate)
	assert.Equal(t, int64(2_500_000), task.Budget)
	assert.Equal(t, domain.PaletteColor(1), task.Color)

	fetched, err := f.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tasks, 2)
	assert.Equal(t, "Build API", fetched.Tasks[1].Title)
	assert.Equal(t, int64(3_500_000), fetched.Budget)
	assert.Equal(t, "2025-05-20", fetched.Deadline)
}

func TestTaskService_QuickAdd_BlankTitle(t *testing.T) {
	f := setup(t)
	p := f.seed(t, testutil.NewTestProject("Portal"))

	_, err := newTaskService(f).QuickAdd(context.Background(), p.ID, " - 2005 - 100")
	assert.ErrorIs(t, err, domain.ErrBlankTitle)
}

func TestTaskService_AddTitle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := f.seed(t, testutil.NewTestProject("Portal"))
	svc := newTaskService(f)

	task, err := svc.AddTitle(ctx, p.ID, "  Call client ")
	require.NoError(t, err)
	assert.Equal(t, "Call client", task.Title)
	assert.Equal(t, "2025-03-15", task.DueDate)
	assert.Contains(t, domain.TaskColors, task.Color)
	assert.False(t, task.Completed)

	_, err = svc.AddTitle(ctx, p.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrBlankTitle)

	fetched, err := f.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Tasks, 1)
}

func TestTaskService_ToggleUpdateDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := testutil.NewTestTask("One", testutil.WithDue("2025-04-01"), testutil.WithTaskBudget(10))
	second := testutil.NewTestTask("Two", testutil.WithDue("2025-06-01"), testutil.WithTaskBudget(20))
	p := f.seed(t, testutil.NewTestProject("Portal", testutil.WithTasks(first, second)))
	svc := newTaskService(f)

	got, err := svc.Toggle(ctx, p.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Tasks[0].Completed)

	got, err = svc.Update(ctx, p.ID, second.ID, domain.TaskPatch{Budget: ptr(int64(50)), Title: ptr("Two v2")})
	require.NoError(t, err)
	assert.Equal(t, int64(60), got.Budget)
	assert.Equal(t, "Two v2", got.Tasks[1].Title)

	_, err = svc.Update(ctx, p.ID, second.ID, domain.TaskPatch{DueDate: ptr("tomorrow")})
	assert.Error(t, err)

	got, err = svc.Delete(ctx, p.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Budget)
	assert.Equal(t, "2025-04-01", got.Deadline)

	fetched, err := f.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tasks, 1)
	assert.True(t, fetched.Tasks[0].Completed)
	assert.Equal(t, int64(10), fetched.Budget)

	_, err = svc.Toggle(ctx, p.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_RollbackOnPartialWrite(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := f.seed(t, testutil.NewTestProject("Portal", testutil.WithTasks(
		testutil.NewTestTask("One", testutil.WithTaskBudget(10)),
		testutil.NewTestTask("Two", testutil.WithTaskBudget(20)),
	)))

	boom := errors.New("disk full")
	// Writes: update row, clear tasks, insert One, insert Two, insert Three.
	svc := NewTaskService(&testutil.FailingUoW{DB: f.db, FailOn: 4, Err: boom}, fixedClock(march15))

	_, err := svc.QuickAdd(ctx, p.ID, "Three - - 30")
	assert.ErrorIs(t, err, boom)

	fetched, err := f.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Tasks, 2)
	assert.Equal(t, int64(30), fetched.Budget)
}
