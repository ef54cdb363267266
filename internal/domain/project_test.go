package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complexProject(tasks ...Task) *Project {
	return &Project{
		ID:            "p1",
		ClientName:    "Acme",
		Name:          "Website",
		Status:        StatusPlanning,
		PaymentStatus: PaymentPending,
		Kind:          KindComplex,
		Deadline:      "2025-01-01",
		Tasks:         tasks,
	}
}

func TestDeriveTotals(t *testing.T) {
	tasks := []Task{
		{ID: "a", Title: "A", DueDate: "2025-04-10", Budget: 1_000_000},
		{ID: "b", Title: "B", DueDate: "2025-05-02", Budget: 2_500_000},
		{ID: "c", Title: "C", DueDate: "garbage", Budget: 0},
	}
	got := DeriveTotals(tasks, "2025-01-01")
	assert.Equal(t, Totals{Deadline: "2025-05-02", Budget: 3_500_000}, got)
}

func TestDeriveTotals_EmptyAndInvalid(t *testing.T) {
	assert.Equal(t, Totals{Deadline: "2025-01-01"}, DeriveTotals(nil, "2025-01-01"))

	onlyInvalid := []Task{{ID: "x", Title: "X", DueDate: "2025-02-31", Budget: 10}}
	assert.Equal(t, Totals{Deadline: "fallback", Budget: 10}, DeriveTotals(onlyInvalid, "fallback"))
}

func TestDeriveTotals_Idempotent(t *testing.T) {
	tasks := []Task{{ID: "a", Title: "A", DueDate: "2025-04-10", Budget: 5}}
	first := DeriveTotals(tasks, "2024-12-31")
	second := DeriveTotals(tasks, first.Deadline)
	assert.Equal(t, first, second)
}

func TestProject_ComplexRecomputesOnTaskMutations(t *testing.T) {
	p := complexProject()

	require.NoError(t, p.AddTask(Task{ID: "t1", Title: "Design", DueDate: "2025-04-10", Budget: 1_000_000}))
	require.NoError(t, p.AddTask(Task{ID: "t2", Title: "Build", DueDate: "2025-05-02", Budget: 2_000_000}))
	assert.Equal(t, int64(3_000_000), p.Budget)
	assert.Equal(t, "2025-05-02", p.Deadline)

	budget := int64(500_000)
	require.NoError(t, p.UpdateTask("t2", TaskPatch{Budget: &budget}))
	assert.Equal(t, int64(1_500_000), p.Budget)

	require.NoError(t, p.RemoveTask("t2"))
	assert.Equal(t, int64(1_000_000), p.Budget)
	assert.Equal(t, "2025-04-10", p.Deadline)

	require.NoError(t, p.RemoveTask("t1"))
	assert.Equal(t, int64(0), p.Budget)
	assert.Equal(t, "2025-04-10", p.Deadline, "deadline falls back to the current value")
}

func TestProject_SingleKeepsManualTotals(t *testing.T) {
	p := complexProject()
	p.Kind = KindSingle
	p.Budget = 9_000_000

	require.NoError(t, p.AddTask(Task{ID: "t1", Title: "Logo", DueDate: "2026-01-01", Budget: 100}))
	assert.Equal(t, int64(9_000_000), p.Budget)
	assert.Equal(t, "2025-01-01", p.Deadline)

	require.NoError(t, p.SetBudget(1))
	require.NoError(t, p.SetDeadline("2030-01-01"))
	assert.Equal(t, int64(1), p.Budget)
	assert.Equal(t, "2030-01-01", p.Deadline)
}

func TestProject_ComplexRefusesDirectTotalsEdits(t *testing.T) {
	p := complexProject(Task{ID: "t1", Title: "A", DueDate: "2025-03-01", Budget: 7})

	assert.ErrorIs(t, p.SetBudget(1), ErrDerivedField)
	assert.ErrorIs(t, p.SetDeadline("2030-01-01"), ErrDerivedField)

	empty := complexProject()
	assert.NoError(t, empty.SetBudget(42))
}

func TestProject_CompletedCascadesForwardOnly(t *testing.T) {
	p := complexProject(
		Task{ID: "t1", Title: "A", DueDate: "2025-03-01"},
		Task{ID: "t2", Title: "B", DueDate: "2025-03-02", Completed: true},
	)

	require.NoError(t, p.SetStatus(StatusCompleted))
	for _, task := range p.Tasks {
		assert.True(t, task.Completed)
	}

	require.NoError(t, p.SetStatus(StatusInProgress))
	for _, task := range p.Tasks {
		assert.True(t, task.Completed, "reverting status leaves tasks completed")
	}
}

func TestProject_TaskNotFound(t *testing.T) {
	p := complexProject()
	assert.ErrorIs(t, p.ToggleTask("nope"), ErrTaskNotFound)
	assert.ErrorIs(t, p.RemoveTask("nope"), ErrTaskNotFound)
	assert.ErrorIs(t, p.UpdateTask("nope", TaskPatch{}), ErrTaskNotFound)
}

func TestProject_TogglePayment(t *testing.T) {
	p := complexProject()
	p.TogglePayment()
	assert.Equal(t, PaymentPaid, p.PaymentStatus)
	p.TogglePayment()
	assert.Equal(t, PaymentPending, p.PaymentStatus)

	p.PaymentStatus = PaymentOverdue
	p.TogglePayment()
	assert.Equal(t, PaymentPaid, p.PaymentStatus)
}

func TestProject_Progress(t *testing.T) {
	p := complexProject()
	assert.Equal(t, 0.0, p.Progress())

	p.Tasks = []Task{
		{ID: "a", Title: "A", Completed: true},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
		{ID: "d", Title: "D", Completed: true},
	}
	assert.Equal(t, 50.0, p.Progress())
	assert.Equal(t, 2, p.RemainingTasks())
}

func TestProject_Validate(t *testing.T) {
	p := complexProject()
	require.NoError(t, p.Validate())

	p.Name = " "
	assert.Error(t, p.Validate())

	p = complexProject()
	p.Status = "Shipped"
	assert.ErrorIs(t, p.Validate(), ErrInvalidStatus)
}

func TestProject_CloneIsDeep(t *testing.T) {
	p := complexProject(Task{ID: "t1", Title: "A"})
	c := p.Clone()
	c.Tasks[0].Completed = true
	assert.False(t, p.Tasks[0].Completed)
}

func TestParseEnums(t *testing.T) {
	cases := map[string]ProjectStatus{
		"planning":    StatusPlanning,
		"in-progress": StatusInProgress,
		"IN_PROGRESS": StatusInProgress,
		"In Progress": StatusInProgress,
		"inprogress":  StatusInProgress,
		"on-hold":     StatusOnHold,
		"completed":   StatusCompleted,
	}
	for in, want := range cases {
		got, err := ParseProjectStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProjectStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	pay, err := ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, pay)

	kind, err := ParseProjectKind("")
	require.NoError(t, err)
	assert.Equal(t, KindSingle, kind)
}

func TestPaletteColor_RoundRobin(t *testing.T) {
	assert.Equal(t, "#6366f1", PaletteColor(0))
	assert.Equal(t, "#f43f5e", PaletteColor(1))
	assert.Equal(t, PaletteColor(0), PaletteColor(len(TaskColors)))
	assert.Contains(t, TaskColors, RandomColor(nil))
}

func TestPaletteColor_NegativeIndexWraps(t *testing.T) {
	assert.Equal(t, TaskColors[len(TaskColors)-1], PaletteColor(-1))
	assert.NotPanics(t, func() {
		assert.Contains(t, TaskColors, PaletteColor(math.MinInt))
	})
}
