package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

// ErrPublisherNotConfigured is returned when no calendar credentials are set.
var ErrPublisherNotConfigured = errors.New("calendar publishing is not configured")

type publishService struct {
	publisher DeadlinePublisher
	observer  UseCaseObserver
}

func NewPublishService(publisher DeadlinePublisher, observers ...UseCaseObserver) PublishService {
	return &publishService{publisher: publisher, observer: useCaseObserverOrNoop(observers)}
}

func (s *publishService) Publish(ctx context.Context, fiscalYear string) (result *app.PublishResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"fiscal_year": fiscalYear}
	defer func() { observe(ctx, s.observer, "publish-calendar", startedAt, fields, &err) }()

	if s.publisher == nil {
		return nil, ErrPublisherNotConfigured
	}

	var deadlines []domain.Deadline
	deadlines, err = calendar.Generate(fiscalYear)
	if err != nil {
		return nil, err
	}
	calendar.SortDeadlines(deadlines)

	stats, err := s.publisher.Publish(ctx, deadlines)
	result = &app.PublishResult{
		FiscalYear: fiscalYear,
		Created:    stats.Created,
		Updated:    stats.Updated,
		Unchanged:  stats.Unchanged,
	}
	fields["created"] = stats.Created
	fields["updated"] = stats.Updated
	fields["unchanged"] = stats.Unchanged
	if err != nil {
		return result, fmt.Errorf("publishing %s: %w", fiscalYear, err)
	}
	return result, nil
}
