package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DaysUntil counts calendar days from today to due, ignoring clock time.
func DaysUntil(due, today time.Time) int {
	y1, m1, d1 := today.Date()
	y2, m2, d2 := due.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// DueIn describes a due date relative to today: "Today", "Tomorrow",
// "In 12d", "3d overdue".
func DueIn(due, today time.Time) string {
	days := DaysUntil(due, today)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}

// DueInStyled colors DueIn by urgency.
func DueInStyled(due, today time.Time) string {
	text := DueIn(due, today)
	days := DaysUntil(due, today)
	switch {
	case days <= 1:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// HumanDate formats a calendar date as "11 May 2025".
func HumanDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// HumanTimestamp returns a relative timestamp such as "5m ago".
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("2 Jan 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("2 Jan 2006")
	}
}

func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskPending:
		return StyleBlue.Render("○ Pending")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskReview:
		return StylePurple.Render("◐ Review")
	case domain.TaskCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.TaskOverdue:
		return StyleRed.Render("✖ Overdue")
	default:
		return StyleDim.Render(string(status))
	}
}

func VerificationPill(status domain.VerificationStatus) string {
	switch status {
	case domain.VerificationVerified:
		return StyleGreen.Render("verified")
	case domain.VerificationRejected:
		return StyleRed.Render("rejected")
	default:
		return StyleYellow.Render("pending")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
