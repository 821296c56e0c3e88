package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/google/uuid"
)

type alertService struct {
	tasks         repository.TaskRepo
	users         repository.UserRepo
	notifications repository.NotificationRepo
	loc           *time.Location
	observer      UseCaseObserver
}

// NewAlertService builds the deadline alert scheduler. Calendar days are
// counted in loc; a nil loc means UTC.
func NewAlertService(
	tasks repository.TaskRepo,
	users repository.UserRepo,
	notifications repository.NotificationRepo,
	loc *time.Location,
	observers ...UseCaseObserver,
) AlertService {
	if loc == nil {
		loc = time.UTC
	}
	return &alertService{
		tasks:         tasks,
		users:         users,
		notifications: notifications,
		loc:           loc,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// SendAlerts notifies the assignee and every manager about open tasks due in
// exactly 7, 3 or 1 days. A recipient gets at most one alert per task and
// offset per calendar day.
//
// "now" and the start of today are fixed once per run, so a run that crosses
// midnight still de-duplicates against a single day.
func (s *alertService) SendAlerts(ctx context.Context, req app.AlertRequest) (result *app.AlertResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "send-alerts", startedAt, fields, &err) }()

	now := time.Now().In(s.loc)
	if req.Now != nil {
		now = req.Now.In(s.loc)
	}
	todayStart := startOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	fields["today"] = todayStart.Format("2006-01-02")

	var managers []*domain.User
	managers, err = s.users.ListByRoles(ctx, domain.ManagerRoles...)
	if err != nil {
		return nil, fmt.Errorf("loading managers: %w", err)
	}

	result = &app.AlertResult{RunAt: now}
	for _, days := range app.AlertOffsets {
		target := todayStart.AddDate(0, 0, days)
		var due []repository.DueTask
		due, err = s.tasks.ListDueBetween(ctx, target, target)
		if err != nil {
			return nil, fmt.Errorf("loading tasks due %s: %w", target.Format("2006-01-02"), err)
		}

		offset := app.OffsetResult{Days: days, DueDate: target, Tasks: len(due)}
		for _, dt := range due {
			for _, recipientID := range alertRecipients(&dt.Task, managers) {
				s.alertOne(ctx, dt, recipientID, days, now, todayStart, tomorrowStart, &offset, result)
			}
		}
		result.SentCount += offset.Sent
		result.SkippedCount += offset.Skipped
		result.FailedCount += offset.Failed
		result.Offsets = append(result.Offsets, offset)
	}

	fields["sent"] = result.SentCount
	fields["skipped"] = result.SkippedCount
	fields["failed"] = result.FailedCount
	return result, nil
}

func (s *alertService) alertOne(
	ctx context.Context,
	dt repository.DueTask,
	recipientID string,
	days int,
	now, todayStart, tomorrowStart time.Time,
	offset *app.OffsetResult,
	result *app.AlertResult,
) {
	fail := func(err error) {
		offset.Failed++
		result.Failures = append(result.Failures, app.Failure{
			Subject: fmt.Sprintf("%s -> %s (%s)", dt.Task.Title, recipientID, pluralDays(days)),
			Err:     err,
		})
		slog.WarnContext(ctx, "alerts: notification not created",
			"task_id", dt.Task.ID,
			"recipient_id", recipientID,
			"alert_days", days,
			"error", err,
		)
	}

	exists, err := s.notifications.ExistsForDay(ctx, recipientID, dt.Task.ID, days, todayStart, tomorrowStart)
	if err != nil {
		fail(err)
		return
	}
	if exists {
		offset.Skipped++
		return
	}

	n := &domain.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        domain.NotificationTaskDue,
		Title:       alertTitle(dt.Task.Title, days),
		Message:     alertMessage(dt, days),
		Link:        "/tasks/" + dt.Task.ID,
		Metadata:    domain.NotificationMetadata{TaskID: dt.Task.ID, AlertDays: days},
		CreatedAt:   now,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		fail(err)
		return
	}
	offset.Sent++
}

// alertRecipients is the assignee, if any, followed by the managers, with
// duplicates removed.
func alertRecipients(t *domain.Task, managers []*domain.User) []string {
	seen := make(map[string]bool, len(managers)+1)
	var out []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	if t.AssignedTo != nil {
		add(*t.AssignedTo)
	}
	for _, m := range managers {
		add(m.ID)
	}
	return out
}

func alertTitle(taskTitle string, days int) string {
	return fmt.Sprintf("Due in %s: %s", pluralDays(days), taskTitle)
}

func alertMessage(dt repository.DueTask, days int) string {
	return fmt.Sprintf("%q for %s is due in %s, on %s.",
		dt.Task.Title, dt.ClientName, pluralDays(days), dt.Task.DueDate.Format("2 Jan 2006"))
}

func pluralDays(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d day", n)
	}
	return fmt.Sprintf("%d days", n)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
