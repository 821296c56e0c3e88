package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

// FormatDeadlines renders deadlines grouped by the month they fall due in.
func FormatDeadlines(fiscalYear string, ds []domain.Deadline, today time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Compliance calendar FY " + fiscalYear))
	b.WriteString("\n\n")

	if len(ds) == 0 {
		b.WriteString(Dim("No deadlines match."))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range calendar.GroupByMonth(ds) {
		b.WriteString(Bold(fmt.Sprintf("%s %d", g.Month, g.Year)))
		b.WriteString("\n")
		rows := make([][]string, 0, len(g.Deadlines))
		for _, d := range g.Deadlines {
			rows = append(rows, []string{
				HumanDate(d.Date),
				d.Title,
				string(d.Service),
				PriorityBadge(d.Priority),
				DueInStyled(d.Date, today),
			})
		}
		b.WriteString(RenderTable([]string{"DUE", "FILING", "SERVICE", "PRIORITY", "WHEN"}, rows))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%d deadlines", len(ds))))
	b.WriteString("\n")
	return b.String()
}

// FormatFiscalYear renders the fiscal year containing today with its bounds.
func FormatFiscalYear(fy domain.FiscalYear) string {
	return fmt.Sprintf("%s  %s\n", Bold("FY "+fy.String()),
		Dim(fmt.Sprintf("(%s to %s)", HumanDate(fy.FirstDay()), HumanDate(fy.LastDay()))))
}
