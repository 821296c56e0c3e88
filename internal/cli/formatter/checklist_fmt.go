package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/checklist"
)

func FormatChecklist(r *app.ChecklistReport) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s checklist: %s", r.TaskType, r.Client.Name)))
	b.WriteString("\n")

	if r.Total == 0 {
		b.WriteString(Dim("No checklist is defined for " + string(r.TaskType) + "."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Items))
	for _, s := range r.Items {
		mark := StyleRed.Render("✖")
		doc := Dim("--")
		if s.Uploaded {
			mark = StyleGreen.Render("✔")
			doc = s.Document.Name + " " + VerificationPill(s.Document.VerificationStatus)
		}
		need := Dim("optional")
		if s.Item.Required {
			need = "required"
		}
		rows = append(rows, []string{mark, s.Item.Name, need, doc})
	}
	b.WriteString(RenderTable([]string{"", "ITEM", "", "DOCUMENT"}, rows))
	b.WriteString("\n")
	b.WriteString(RenderCollected(r.Collected, r.Total, 20))
	b.WriteString("\n")

	if missing := r.RequiredMissing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = m.Name
		}
		b.WriteString(StyleYellow.Render("Still needed: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func FormatCatalog(summaries []checklist.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{string(s.TaskType), strconv.Itoa(s.ItemCount), strconv.Itoa(s.RequiredCount)})
	}
	return Header("Checklist catalog") + "\n" + RenderTable([]string{"TASK TYPE", "ITEMS", "REQUIRED"}, rows, 1, 2)
}
