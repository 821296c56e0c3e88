package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/checklist"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDeadlines(t *testing.T) {
	ds, err := calendar.Generate("2025-2026")
	require.NoError(t, err)
	calendar.SortDeadlines(ds)
	ds = calendar.FilterByMonth(ds, time.May)

	out := FormatDeadlines("2025-2026", ds, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	assert.Contains(t, out, "COMPLIANCE CALENDAR FY 2025-2026")
	assert.Contains(t, out, "May 2025")
	assert.Contains(t, out, "GSTR-1 - April 2025")
	assert.Contains(t, out, "11 May 2025")
	assert.Contains(t, out, "In 10d")
	assert.NotContains(t, out, "June 2025")

	empty := FormatDeadlines("2025-2026", nil, time.Now())
	assert.Contains(t, empty, "No deadlines match.")
}

func TestFormatFiscalYear(t *testing.T) {
	fy, err := domain.ParseFiscalYear("2025-2026")
	require.NoError(t, err)
	out := FormatFiscalYear(fy)
	assert.Contains(t, out, "FY 2025-2026")
	assert.Contains(t, out, "1 Apr 2025")
	assert.Contains(t, out, "31 Mar 2026")
}

func TestFormatSyncResult(t *testing.T) {
	out := FormatSyncResult(&app.SyncResult{
		FiscalYear:   "2025-2026",
		Month:        time.April,
		ClientCount:  2,
		CreatedCount: 5,
		SkippedCount: 3,
		FailedCount:  1,
		Failures:     []app.Failure{{Subject: "Acme / GSTR-1 - March 2025", Err: errors.New("disk full")}},
	})
	assert.Contains(t, out, "FY 2025-2026, April only")
	assert.Contains(t, out, "Acme / GSTR-1 - March 2025: disk full")
}

func TestFormatAlertResult(t *testing.T) {
	out := FormatAlertResult(&app.AlertResult{
		RunAt:     time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		SentCount: 2,
		Offsets: []app.OffsetResult{
			{Days: 7, DueDate: time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC), Tasks: 1, Sent: 2},
		},
	})
	assert.Contains(t, out, "7d")
	assert.Contains(t, out, "8 Jul 2025")
	assert.Contains(t, out, "2 sent, 0 skipped, 0 failed")
}

func TestFormatChecklist(t *testing.T) {
	docs := []domain.Document{{ID: "d1", Name: "PAN card scan", Category: domain.CategoryIdentity, VerificationStatus: domain.VerificationVerified}}
	res := checklist.DefaultMatcher().Match(domain.TaskITRFiling, docs)
	out := FormatChecklist(&app.ChecklistReport{Client: &domain.Client{Name: "Acme"}, Result: res})

	assert.Contains(t, out, "ITR_FILING CHECKLIST: ACME")
	assert.Contains(t, out, "PAN card scan verified")
	assert.Contains(t, out, "1/8")
	assert.Contains(t, out, "Still needed: Aadhaar Card")

	empty := FormatChecklist(&app.ChecklistReport{
		Client: &domain.Client{Name: "Acme"},
		Result: checklist.DefaultMatcher().Match("payroll", nil),
	})
	assert.Contains(t, empty, "No checklist is defined for payroll.")
}

func TestFormatCatalog(t *testing.T) {
	out := FormatCatalog(checklist.DefaultMatcher().Summaries())
	assert.Contains(t, out, "itr_filing")
	assert.Contains(t, out, "roc_filing")
}

func TestFormatTasks(t *testing.T) {
	today := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		{ID: "task-0001-aaaa", ClientID: "c1", Title: "GSTR-3B - June 2025", DueDate: today.AddDate(0, 0, 19), Status: domain.TaskPending},
		{ID: "task-0002-bbbb", ClientID: "c2", Title: "TDS Deposit - June 2025", DueDate: today.AddDate(0, 0, 6), Status: domain.TaskCompleted},
	}
	out := FormatTasks(tasks, map[string]string{"c1": "Acme"}, today)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "In 19d")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "2 tasks")

	assert.Contains(t, FormatTasks(nil, nil, today), "No tasks found.")
}

func TestFormatNotifications(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	out := FormatNotifications([]*domain.Notification{{
		Title:     "Due in 3 days: GSTR-1 - June 2025",
		Message:   `"GSTR-1 - June 2025" for Acme is due in 3 days, on 11 Jul 2025.`,
		Link:      "/tasks/t1",
		CreatedAt: now.Add(-2 * time.Hour),
	}}, now)
	assert.Contains(t, out, "Due in 3 days")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "/tasks/t1")

	assert.Contains(t, FormatNotifications(nil, now), "No notifications.")
}
