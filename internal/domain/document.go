package domain

import "time"

// Document is a file a client has uploaded. Only its metadata is tracked here.
type Document struct {
	ID                 string
	ClientID           string
	Name               string
	Category           DocumentCategory
	VerificationStatus VerificationStatus
	UploadedAt         time.Time
}

// ChecklistItem is a document requirement for a filing type.
type ChecklistItem struct {
	Name     string
	Category DocumentCategory
	Required bool
}
