package smart

import (
	"testing"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskLineFrom_FullGrammar(t *testing.T) {
	task, ok := ParseTaskLineFrom("Design homepage - 1304 - 1.500.000", 0, baseTime)
	require.True(t, ok)
	assert.Equal(t, "Design homepage", task.Title)
	assert.Equal(t, "2025-04-13", task.DueDate)
	assert.Equal(t, int64(1_500_000), task.Budget)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskColors[0], task.Color)
}

func TestParseTaskLineFrom_Defaults(t *testing.T) {
	task, ok := ParseTaskLineFrom("  Write copy  ", 2, baseTime)
	require.True(t, ok)
	assert.Equal(t, "Write copy", task.Title)
	assert.Equal(t, "2025-03-15", task.DueDate)
	assert.Equal(t, int64(0), task.Budget)
	assert.Equal(t, domain.TaskColors[2], task.Color)
}

func TestParseTaskLineFrom_BadDateFallsBackToToday(t *testing.T) {
	task, ok := ParseTaskLineFrom("Deploy - 9999 - 200", 0, baseTime)
	require.True(t, ok)
	assert.Equal(t, "2025-03-15", task.DueDate)
	assert.Equal(t, int64(200), task.Budget)
}

func TestParseTaskLineFrom_ExtraSegmentsIgnored(t *testing.T) {
	task, ok := ParseTaskLineFrom("Logo - 0105 - 300 - leftover - more", 0, baseTime)
	require.True(t, ok)
	assert.Equal(t, "Logo", task.Title)
	assert.Equal(t, "2025-05-01", task.DueDate)
	assert.Equal(t, int64(300), task.Budget)
}

func TestParseTaskLineFrom_ColorCyclesThroughPalette(t *testing.T) {
	n := len(domain.TaskColors)
	a, _ := ParseTaskLineFrom("a", 1, baseTime)
	b, _ := ParseTaskLineFrom("b", 1+n, baseTime)
	assert.Equal(t, a.Color, b.Color)
}

func TestParseTaskLineFrom_BlankTitleRejected(t *testing.T) {
	_, ok := ParseTaskLineFrom("   ", 0, baseTime)
	assert.False(t, ok)

	_, ok = ParseTaskLineFrom(" - 1304 - 100", 0, baseTime)
	assert.False(t, ok)
}

func TestParseTaskLines(t *testing.T) {
	text := "Wireframes - 0104 - 1.000\n\n   \nMockups - 1004\nReview"
	tasks := ParseTaskLines(text, 3, baseTime)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Wireframes", tasks[0].Title)
	assert.Equal(t, domain.PaletteColor(3), tasks[0].Color)
	assert.Equal(t, domain.PaletteColor(4), tasks[1].Color)
	assert.Equal(t, domain.PaletteColor(5), tasks[2].Color)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
}

func TestParseTaskLineFrom_HyphenatedDatesStayWhole(t *testing.T) {
	tests := []struct {
		line   string
		due    string
		budget int64
	}{
		{"Design - 2025-04-10 - 1.000.000", "2025-04-10", 1_000_000},
		{"Design - 13-4 - 500", "2025-04-13", 500},
		{"Design - 13-04-26", "2026-04-13", 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			task, ok := ParseTaskLineFrom(tt.line, 0, baseTime)
			require.True(t, ok)
			assert.Equal(t, "Design", task.Title)
			assert.Equal(t, tt.due, task.DueDate)
			assert.Equal(t, tt.budget, task.Budget)
		})
	}
}

func TestParseTaskLineFrom_HyphenInsideTitleWord(t *testing.T) {
	task, ok := ParseTaskLineFrom("Send e-mail campaign - 0104 - 200", 0, baseTime)
	require.True(t, ok)
	assert.Equal(t, "Send e-mail campaign", task.Title)
	assert.Equal(t, "2025-04-01", task.DueDate)
	assert.Equal(t, int64(200), task.Budget)
}

func TestParseTaskLineFrom_TightSeparatorsAtEnds(t *testing.T) {
	task, ok := ParseTaskLineFrom("Logo -", 0, baseTime)
	require.True(t, ok)
	assert.Equal(t, "Logo", task.Title)
	assert.Equal(t, "2025-03-15", task.DueDate)
}
