package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return box.Render(content)
}

// RelativeDeadline describes a YYYY-MM-DD date relative to now's calendar
// day, e.g. "Today", "In 3d", "2w ago". Unreadable dates are returned as is.
func RelativeDeadline(date string, now time.Time) string {
	days, ok := daysUntil(date, now)
	if !ok {
		if date == "" {
			return "--"
		}
		return date
	}

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DeadlineStyled colours RelativeDeadline by urgency. Finished projects are
// always dim.
func DeadlineStyled(date string, now time.Time, done bool) string {
	text := RelativeDeadline(date, now)
	days, ok := daysUntil(date, now)
	switch {
	case done || !ok:
		return StyleDim.Render(text)
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

func daysUntil(date string, now time.Time) (int, bool) {
	d, ok := domain.ParseDate(date)
	if !ok {
		return 0, false
	}
	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(today).Hours() / 24), true
}

func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.StatusPlanning:
		return StyleBlue.Render("○ Planning")
	case domain.StatusInProgress:
		return StyleIndigo.Render("● In Progress")
	case domain.StatusReview:
		return StyleYellow.Render("◐ Review")
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.StatusOnHold:
		return StyleDim.Render("‖ On Hold")
	default:
		return StyleDim.Render(string(status))
	}
}

func PaymentPill(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPaid:
		return StyleGreen.Render("$ Paid")
	case domain.PaymentOverdue:
		return StyleRed.Render("! Overdue")
	default:
		return StyleYellow.Render("… Pending")
	}
}

// UrgentBadge is a red flag for urgent projects and blank otherwise.
func UrgentBadge(urgent bool) string {
	if urgent {
		return StyleRed.Render("⚑")
	}
	return " "
}

func KindBadge(kind domain.ProjectKind) string {
	if kind == domain.KindComplex {
		return StyleIndigo.Render("complex")
	}
	return StyleDim.Render("single")
}

// Money formats an amount with dotted thousands and the dong sign.
func Money(n int64) string {
	return smart.FormatMoney(n)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Checkbox renders a task's completion mark.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
