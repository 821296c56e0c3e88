package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/google/uuid"
)

type syncService struct {
	clients  repository.ClientRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewSyncService(
	clients repository.ClientRepo,
	tasks repository.TaskRepo,
	observers ...UseCaseObserver,
) SyncService {
	return &syncService{
		clients:  clients,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Sync expands the fiscal year's deadlines into tasks for every client that
// subscribes to the deadline's service. Existing tasks are left alone, so a
// rerun only fills gaps. A failure on one (client, deadline) pair is recorded
// and the run moves on.
func (s *syncService) Sync(ctx context.Context, req app.SyncRequest) (result *app.SyncResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"fiscal_year": req.FiscalYear,
		"month":       int(req.Month),
	}
	defer func() { observe(ctx, s.observer, "sync-tasks", startedAt, fields, &err) }()

	if req.OperatorID == "" {
		return nil, app.ErrMissingOperator
	}
	if err = app.ValidateMonth(req.Month); err != nil {
		return nil, err
	}

	var deadlines []domain.Deadline
	deadlines, err = calendar.Generate(req.FiscalYear)
	if err != nil {
		return nil, err
	}
	calendar.SortDeadlines(deadlines)
	deadlines = calendar.FilterByMonth(deadlines, req.Month)

	var clients []*domain.Client
	clients, err = s.clients.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	result = &app.SyncResult{
		FiscalYear:  req.FiscalYear,
		Month:       req.Month,
		ClientCount: len(clients),
	}
	if req.Progress != nil {
		req.Progress.Start(len(clients))
		defer req.Progress.Finish()
	}

	for _, c := range clients {
		for _, d := range deadlines {
			if !c.Subscribes(d.Service) {
				continue
			}
			s.syncOne(ctx, c, d, req.OperatorID, now, result)
		}
		if req.Progress != nil {
			req.Progress.Advance(c.Name)
		}
	}

	fields["clients"] = result.ClientCount
	fields["created"] = result.CreatedCount
	fields["skipped"] = result.SkippedCount
	fields["failed"] = result.FailedCount
	return result, nil
}

func (s *syncService) syncOne(ctx context.Context, c *domain.Client, d domain.Deadline, operatorID string, now time.Time, result *app.SyncResult) {
	_, err := s.tasks.FindByKey(ctx, c.ID, d.Title, d.FiscalYear)
	switch {
	case err == nil:
		result.SkippedCount++
		return
	case !errors.Is(err, repository.ErrNotFound):
		recordSyncFailure(ctx, result, c, d, fmt.Errorf("looking up task: %w", err))
		return
	}

	task := domain.NewTaskFromDeadline(uuid.New().String(), c.ID, operatorID, d, now)
	if err := s.tasks.Create(ctx, task); err != nil {
		// Another run created it between the lookup and the insert.
		if errors.Is(err, repository.ErrDuplicate) {
			result.SkippedCount++
			return
		}
		recordSyncFailure(ctx, result, c, d, err)
		return
	}
	result.CreatedCount++
	result.CreatedTasks = append(result.CreatedTasks, task)
}

func recordSyncFailure(ctx context.Context, result *app.SyncResult, c *domain.Client, d domain.Deadline, err error) {
	result.FailedCount++
	result.Failures = append(result.Failures, app.Failure{Subject: c.Name + " / " + d.Title, Err: err})
	slog.WarnContext(ctx, "sync: task not created",
		"client_id", c.ID,
		"client", c.Name,
		"title", d.Title,
		"fiscal_year", d.FiscalYear,
		"error", err,
	)
}
