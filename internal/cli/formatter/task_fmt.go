package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// FormatTasks lists tasks. clientNames maps client ids to display names;
// unknown ids print truncated.
func FormatTasks(tasks []*domain.Task, clientNames map[string]string, today time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks found.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		client, ok := clientNames[t.ClientID]
		if !ok {
			client = TruncID(t.ClientID)
		}
		when := DueInStyled(t.DueDate, today)
		if t.IsCompleted() {
			when = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			HumanDate(t.DueDate),
			when,
			client,
			t.Title,
			TaskStatusPill(t.Status),
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "DUE", "WHEN", "CLIENT", "TASK", "STATUS"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d tasks", len(tasks))))
	b.WriteString("\n")
	return b.String()
}

func FormatNotifications(notes []*domain.Notification, now time.Time) string {
	if len(notes) == 0 {
		return Dim("No notifications.") + "\n"
	}
	var b strings.Builder
	for _, n := range notes {
		marker := StyleHeader.Render("●")
		if n.Read {
			marker = Dim("○")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", marker, Bold(n.Title), Dim(HumanTimestamp(n.CreatedAt, now)))
		fmt.Fprintf(&b, "  %s\n", n.Message)
		if n.Link != "" {
			fmt.Fprintf(&b, "  %s\n", Dim(n.Link))
		}
	}
	return b.String()
}
