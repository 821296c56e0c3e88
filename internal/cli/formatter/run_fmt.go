package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/filingdesk/internal/app"
)

func failureLines(b *strings.Builder, failures []app.Failure) {
	if len(failures) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(StyleRed.Render("Failures"))
	b.WriteString("\n")
	for _, f := range failures {
		b.WriteString("  ✖ ")
		b.WriteString(f.String())
		b.WriteString("\n")
	}
}

func FormatSyncResult(r *app.SyncResult) string {
	scope := "FY " + r.FiscalYear
	if r.Month != 0 {
		scope += ", " + r.Month.String() + " only"
	}

	var b strings.Builder
	b.WriteString(Header("Task sync"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", Dim("Scope:"), scope)
	fmt.Fprintf(&b, "%s  %d\n", Dim("Clients:"), r.ClientCount)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Created:"), StyleGreen.Render(strconv.Itoa(r.CreatedCount)))
	fmt.Fprintf(&b, "%s  %d\n", Dim("Skipped:"), r.SkippedCount)
	failed := strconv.Itoa(r.FailedCount)
	if r.FailedCount > 0 {
		failed = StyleRed.Render(failed)
	}
	fmt.Fprintf(&b, "%s  %s\n", Dim("Failed: "), failed)
	failureLines(&b, r.Failures)
	return b.String()
}

func FormatAlertResult(r *app.AlertResult) string {
	var b strings.Builder
	b.WriteString(Header("Deadline alerts"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("Run at:"), r.RunAt.Format("2 Jan 2006 15:04 MST"))

	rows := make([][]string, 0, len(r.Offsets))
	for _, o := range r.Offsets {
		rows = append(rows, []string{
			fmt.Sprintf("%dd", o.Days),
			HumanDate(o.DueDate),
			strconv.Itoa(o.Tasks),
			strconv.Itoa(o.Sent),
			strconv.Itoa(o.Skipped),
			strconv.Itoa(o.Failed),
		})
	}
	b.WriteString(RenderTable([]string{"OFFSET", "DUE", "TASKS", "SENT", "SKIPPED", "FAILED"}, rows, 2, 3, 4, 5))
	fmt.Fprintf(&b, "\n%s sent, %d skipped, %d failed\n",
		StyleGreen.Render(strconv.Itoa(r.SentCount)), r.SkippedCount, r.FailedCount)
	failureLines(&b, r.Failures)
	return b.String()
}

func FormatRosterImport(r *app.RosterImportResult) string {
	return fmt.Sprintf("%s imported %d clients, %d users, %d documents\n",
		StyleGreen.Render("✔"), r.ClientCount, r.UserCount, r.DocumentCount)
}

func FormatPublishResult(r *app.PublishResult, calendarID string) string {
	return fmt.Sprintf("%s FY %s published to %s: %d created, %d updated, %d unchanged\n",
		StyleGreen.Render("✔"), r.FiscalYear, calendarID, r.Created, r.Updated, r.Unchanged)
}
