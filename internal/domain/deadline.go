package domain

import "time"

// Deadline is a statutory filing obligation computed for a fiscal year.
// Deadlines are never persisted; they are regenerated on every call.
type Deadline struct {
	Date        time.Time
	Title       string
	TaskType    TaskType
	Service     Service
	Priority    Priority
	Description string
	FiscalYear  string
}
