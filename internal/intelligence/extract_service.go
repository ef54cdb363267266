package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/llm"
	"github.com/alexanderramin/freeflow/internal/smart"
)

// DefaultTaskTitle names extracted tasks the model left untitled.
const DefaultTaskTitle = "Untitled task"

// ExtractedTask is one task proposed by the model. DueDate is free-form and
// may be empty.
type ExtractedTask struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate"`
}

// TaskExtractService turns a free-text brief into a task list.
type TaskExtractService interface {
	// Extract returns an empty list, never an error, when the model fails.
	Extract(ctx context.Context, text string, now time.Time) ([]ExtractedTask, error)
}

type taskExtractService struct {
	client   llm.LLMClient
	observer llm.Observer
}

func NewTaskExtractService(client llm.LLMClient, observer llm.Observer) TaskExtractService {
	return &taskExtractService{client: client, observer: observer}
}

func (s *taskExtractService) Extract(ctx context.Context, text string, now time.Time) ([]ExtractedTask, error) {
	if s.client == nil || strings.TrimSpace(text) == "" {
		return []ExtractedTask{}, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtractTasks,
		SystemPrompt: fmt.Sprintf(extractSystemPrompt, now.Year()),
		UserPrompt:   fmt.Sprintf("Text: %q", text),
	})
	if err != nil {
		return []ExtractedTask{}, nil
	}

	tasks, err := llm.ExtractJSONArray[ExtractedTask](resp.Text)
	if err != nil {
		return []ExtractedTask{}, nil
	}
	return tasks, nil
}

// ToTasks converts extracted tasks into domain tasks. Colours cycle through
// the palette starting after existingCount. Missing titles become
// DefaultTaskTitle; due dates are normalised through the smart date parser
// and default to today.
func ToTasks(extracted []ExtractedTask, existingCount int, now time.Time) []domain.Task {
	out := make([]domain.Task, 0, len(extracted))
	for i, e := range extracted {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = DefaultTaskTitle
		}
		out = append(out, domain.Task{
			ID:      uuid.New().String(),
			Title:   title,
			DueDate: normaliseDue(e.DueDate, now),
			Color:   domain.PaletteColor(existingCount + i),
		})
	}
	return out
}

func normaliseDue(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if _, ok := domain.ParseDate(raw); ok {
		return raw
	}
	if d, ok := smart.ResolveDate(raw, now); ok {
		if _, valid := domain.ParseDate(d); valid {
			return d
		}
	}
	return smart.Today(now)
}

// LatestDueDate returns the latest valid due date among tasks, or fallback
// when none is valid.
func LatestDueDate(tasks []domain.Task, fallback string) string {
	return domain.DeriveTotals(tasks, fallback).Deadline
}
