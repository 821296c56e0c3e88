package service

import (
	"context"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/checklist"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/gcal"
	"github.com/alexanderramin/filingdesk/internal/importer"
	"github.com/alexanderramin/filingdesk/internal/repository"
)

type CalendarService interface {
	// ListDeadlines returns the fiscal year's deadlines sorted by date and
	// narrowed by the query's month and service.
	ListDeadlines(ctx context.Context, q app.DeadlineQuery) ([]domain.Deadline, error)
}

type SyncService interface {
	Sync(ctx context.Context, req app.SyncRequest) (*app.SyncResult, error)
}

type AlertService interface {
	SendAlerts(ctx context.Context, req app.AlertRequest) (*app.AlertResult, error)
}

type ChecklistService interface {
	Report(ctx context.Context, clientID string, taskType domain.TaskType) (*app.ChecklistReport, error)
	Catalog() []checklist.Summary
}

type TaskService interface {
	List(ctx context.Context, f repository.TaskFilter) ([]*domain.Task, error)
	Complete(ctx context.Context, id string) (*domain.Task, error)
	Assign(ctx context.Context, id, userID string) (*domain.Task, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error)
}

type RosterService interface {
	ImportFile(ctx context.Context, path string) (*app.RosterImportResult, error)
	Import(ctx context.Context, schema *importer.RosterSchema) (*app.RosterImportResult, error)
}

// DeadlinePublisher pushes deadlines to an external calendar.
type DeadlinePublisher interface {
	Publish(ctx context.Context, deadlines []domain.Deadline) (gcal.Stats, error)
}

type PublishService interface {
	Publish(ctx context.Context, fiscalYear string) (*app.PublishResult, error)
}
