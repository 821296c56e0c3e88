package app

import (
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// SyncProgress is told how many clients a run will visit and when each one is
// finished. The CLI backs it with a progress bar.
type SyncProgress interface {
	Start(total int)
	Advance(clientName string)
	Finish()
}

type SyncRequest struct {
	FiscalYear string
	// Month limits the run to deadlines due in that calendar month. Zero
	// means every month.
	Month      time.Month
	OperatorID string
	Now        *time.Time
	Progress   SyncProgress
}

func NewSyncRequest(fiscalYear, operatorID string) SyncRequest {
	return SyncRequest{FiscalYear: fiscalYear, OperatorID: operatorID}
}

type SyncResult struct {
	FiscalYear   string
	Month        time.Month
	ClientCount  int
	CreatedCount int
	SkippedCount int
	FailedCount  int
	CreatedTasks []*domain.Task
	Failures     []Failure
}
