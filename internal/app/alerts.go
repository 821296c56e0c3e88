package app

import "time"

// AlertOffsets are the days before a due date at which reminders fire.
var AlertOffsets = []int{7, 3, 1}

type AlertRequest struct {
	// Now defaults to the current time in the configured location.
	Now *time.Time
}

// OffsetResult counts one offset's work within a run.
type OffsetResult struct {
	Days    int
	DueDate time.Time
	Tasks   int
	Sent    int
	Skipped int
	Failed  int
}

type AlertResult struct {
	RunAt        time.Time
	SentCount    int
	SkippedCount int
	FailedCount  int
	Offsets      []OffsetResult
	Failures     []Failure
}
