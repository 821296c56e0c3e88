package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID          string
	Title       string
	Description string
	ClientID    string
	TaskType    TaskType
	Service     Service
	Status      TaskStatus
	Priority    Priority
	DueDate     time.Time
	FiscalYear  string
	AssignedTo  *string
	CreatedBy   string
	Source      TaskSource
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTaskFromDeadline builds a pending task for one client's deadline.
func NewTaskFromDeadline(id, clientID, createdBy string, d Deadline, now time.Time) *Task {
	return &Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		ClientID:    clientID,
		TaskType:    d.TaskType,
		Service:     d.Service,
		Status:      TaskPending,
		Priority:    d.Priority,
		DueDate:     d.Date,
		FiscalYear:  d.FiscalYear,
		CreatedBy:   createdBy,
		Source:      SourceSync,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// Complete marks the task completed. Completing twice keeps the first timestamp.
func (t *Task) Complete(now time.Time) error {
	if t.Status == TaskCompleted {
		return nil
	}
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// Assign sets the responsible user. Completed tasks cannot be reassigned.
func (t *Task) Assign(userID string, now time.Time) error {
	if t.Status == TaskCompleted {
		return fmt.Errorf("cannot assign completed task %s", t.ID)
	}
	t.AssignedTo = &userID
	t.UpdatedAt = now
	return nil
}
