package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// DueTask is a task joined with the name of the client it belongs to, as the
// alert scheduler needs both for the message text.
type DueTask struct {
	Task       domain.Task
	ClientName string
}

// TaskFilter narrows List. Zero values match everything.
type TaskFilter struct {
	FiscalYear string
	ClientID   string
	Status     domain.TaskStatus
	Source     domain.TaskSource
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// ListAll returns every client with its services, ordered by name then id.
	ListAll(ctx context.Context) ([]*domain.Client, error)
}

type TaskRepo interface {
	// Create inserts a task. A second task for the same (client, title,
	// fiscal year) fails with ErrDuplicate.
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByKey returns ErrNotFound when no task holds the triple.
	FindByKey(ctx context.Context, clientID, title, fiscalYear string) (*domain.Task, error)
	// ListDueBetween returns tasks that are not completed and fall due on a
	// calendar date in [from, to], ordered by id.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]DueTask, error)
	List(ctx context.Context, f TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRoles returns users holding any of roles, ordered by id.
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ExistsForDay reports whether recipientID already got the alert for
	// (taskID, alertDays) with created_at in [from, to).
	ExistsForDay(ctx context.Context, recipientID, taskID string, alertDays int, from, to time.Time) (bool, error)
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error)
}

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.Document, error)
}
