package smart

import (
	"strings"
	"time"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/google/uuid"
)

// ParseTaskLine reads "title - date - amount" shorthand against the wall clock.
func ParseTaskLine(line string, existingCount int) (domain.Task, bool) {
	return ParseTaskLineFrom(line, existingCount, time.Now())
}

// ParseTaskLineFrom splits line on every separator hyphen. The first segment
// is the title, the second a smart date (today when missing or unreadable)
// and the third a dotted amount. Further segments are ignored. The colour is
// picked round-robin from existingCount. ok is false when the title is blank.
//
// A hyphen separates only when it touches whitespace or an end of the line,
// so "2025-04-10", "13-4" and "e-mail" stay whole.
func ParseTaskLineFrom(line string, existingCount int, now time.Time) (domain.Task, bool) {
	segments := splitSegments(line)

	title := segments[0]
	if title == "" {
		return domain.Task{}, false
	}

	task := domain.Task{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: Today(now),
		Color:   domain.PaletteColor(existingCount),
	}
	if len(segments) > 1 && segments[1] != "" {
		if d, ok := ResolveDate(segments[1], now); ok {
			task.DueDate = d
		}
	}
	if len(segments) > 2 {
		task.Budget = ParseNumber(segments[2])
	}
	return task, true
}

// splitSegments cuts line at separator hyphens and trims each segment.
func splitSegments(line string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '-' || !isSeparator(line, i) {
			continue
		}
		segments = append(segments, strings.TrimSpace(line[start:i]))
		start = i + 1
	}
	return append(segments, strings.TrimSpace(line[start:]))
}

func isSeparator(line string, i int) bool {
	return i == 0 || i == len(line)-1 || isSpace(line[i-1]) || isSpace(line[i+1])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// ParseTaskLines applies ParseTaskLineFrom to each non-blank line of text,
// advancing the colour index per accepted task.
func ParseTaskLines(text string, existingCount int, now time.Time) []domain.Task {
	var tasks []domain.Task
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, ok := ParseTaskLineFrom(line, existingCount+len(tasks), now)
		if !ok {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}
