package domain

import "time"

// NotificationMetadata ties an alert back to the task and offset that fired it.
type NotificationMetadata struct {
	TaskID    string
	AlertDays int
}

type Notification struct {
	ID          string
	RecipientID string
	Type        string
	Title       string
	Message     string
	Link        string
	Metadata    NotificationMetadata
	Read        bool
	CreatedAt   time.Time
}
