package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/checklist"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
)

type checklistService struct {
	clients   repository.ClientRepo
	documents repository.DocumentRepo
	matcher   *checklist.Matcher
	observer  UseCaseObserver
}

// NewChecklistService reconciles client documents with matcher. A nil
// matcher uses the default catalog and fuzzy strategy.
func NewChecklistService(
	clients repository.ClientRepo,
	documents repository.DocumentRepo,
	matcher *checklist.Matcher,
	observers ...UseCaseObserver,
) ChecklistService {
	if matcher == nil {
		matcher = checklist.DefaultMatcher()
	}
	return &checklistService{
		clients:   clients,
		documents: documents,
		matcher:   matcher,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *checklistService) Report(ctx context.Context, clientID string, taskType domain.TaskType) (report *app.ChecklistReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"client_id": clientID, "task_type": string(taskType)}
	defer func() { observe(ctx, s.observer, "checklist-report", startedAt, fields, &err) }()

	var client *domain.Client
	client, err = s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading client: %w", err)
	}

	var docs []*domain.Document
	docs, err = s.documents.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	uploaded := make([]domain.Document, len(docs))
	for i, d := range docs {
		uploaded[i] = *d
	}
	res := s.matcher.Match(taskType, uploaded)
	fields["collected"] = res.Collected
	fields["total"] = res.Total

	return &app.ChecklistReport{Client: client, Result: res}, nil
}

func (s *checklistService) Catalog() []checklist.Summary {
	return s.matcher.Summaries()
}
