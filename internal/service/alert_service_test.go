package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/alexanderramin/filingdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertFixture struct {
	ctx           context.Context
	clients       *repository.SQLiteClientRepo
	tasks         *repository.SQLiteTaskRepo
	users         *repository.SQLiteUserRepo
	notifications *repository.SQLiteNotificationRepo
	client        *domain.Client
	partner       *domain.User
	junior        *domain.User
}

func newAlertFixture(t *testing.T) *alertFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &alertFixture{
		ctx:           context.Background(),
		clients:       repository.NewSQLiteClientRepo(database),
		tasks:         repository.NewSQLiteTaskRepo(database),
		users:         repository.NewSQLiteUserRepo(database),
		notifications: repository.NewSQLiteNotificationRepo(database),
		client:        testutil.NewTestClient("Acme Pvt Ltd", testutil.WithServices(domain.ServiceGST)),
		partner:       testutil.NewTestUser("Priya", domain.RolePartner, testutil.WithUserID("u-partner")),
		junior:        testutil.NewTestUser("Ravi", domain.RoleJuniorCA, testutil.WithUserID("u-junior")),
	}
	require.NoError(t, f.clients.Create(f.ctx, f.client))
	require.NoError(t, f.users.Create(f.ctx, f.partner))
	require.NoError(t, f.users.Create(f.ctx, f.junior))
	return f
}

func (f *alertFixture) service(loc *time.Location) AlertService {
	return NewAlertService(f.tasks, f.users, f.notifications, loc)
}

func (f *alertFixture) addTask(t *testing.T, title string, due time.Time, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	opts = append([]testutil.TaskOption{testutil.WithDueDate(due)}, opts...)
	task := testutil.NewTestTask(f.client.ID, title, opts...)
	require.NoError(t, f.tasks.Create(f.ctx, task))
	return task
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(t time.Time) app.AlertRequest {
	return app.AlertRequest{Now: &t}
}

func TestSendAlerts_OneDayOutOncePerDay(t *testing.T) {
	f := newAlertFixture(t)
	task := f.addTask(t, "GSTR-3B - June 2025", date(2025, 7, 20))
	svc := f.service(time.UTC)

	day := time.Date(2025, 7, 19, 9, 0, 0, 0, time.UTC)
	res, err := svc.SendAlerts(f.ctx, at(day))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SentCount, "only the partner is a recipient")
	assert.Zero(t, res.SkippedCount)

	notes, err := f.notifications.ListByRecipient(f.ctx, f.partner.ID, false)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	n := notes[0]
	assert.Equal(t, domain.NotificationTaskDue, n.Type)
	assert.Equal(t, "Due in 1 day: GSTR-3B - June 2025", n.Title)
	assert.Contains(t, n.Message, "GSTR-3B - June 2025")
	assert.Contains(t, n.Message, "Acme Pvt Ltd")
	assert.Contains(t, n.Message, "1 day")
	assert.NotContains(t, n.Message, "1 days")
	assert.Equal(t, "/tasks/"+task.ID, n.Link)
	assert.Equal(t, task.ID, n.Metadata.TaskID)
	assert.Equal(t, 1, n.Metadata.AlertDays)
	assert.False(t, n.Read)

	again, err := svc.SendAlerts(f.ctx, at(day.Add(5*time.Hour)))
	require.NoError(t, err)
	assert.Zero(t, again.SentCount)
	assert.Equal(t, 1, again.SkippedCount)

	nextDay, err := svc.SendAlerts(f.ctx, at(day.AddDate(0, 0, 1)))
	require.NoError(t, err)
	assert.Zero(t, nextDay.SentCount)
	assert.Zero(t, nextDay.SkippedCount)

	notes, err = f.notifications.ListByRecipient(f.ctx, f.partner.ID, false)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestSendAlerts_OnlyExactOffsets(t *testing.T) {
	f := newAlertFixture(t)
	today := date(2025, 7, 1)
	for _, d := range []int{0, 1, 2, 3, 4, 6, 7, 8, 30} {
		f.addTask(t, fmt.Sprintf("task +%d", d), today.AddDate(0, 0, d))
	}

	res, err := f.service(time.UTC).SendAlerts(f.ctx, at(today.Add(10*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 3, res.SentCount)

	require.Len(t, res.Offsets, 3)
	for i, days := range []int{7, 3, 1} {
		o := res.Offsets[i]
		assert.Equal(t, days, o.Days)
		assert.Equal(t, 1, o.Tasks)
		assert.Equal(t, 1, o.Sent)
		assert.Equal(t, today.AddDate(0, 0, days).Format("2006-01-02"), o.DueDate.Format("2006-01-02"))
	}

	notes, err := f.notifications.ListByRecipient(f.ctx, f.partner.ID, false)
	require.NoError(t, err)
	titles := make([]string, 0, len(notes))
	for _, n := range notes {
		titles = append(titles, n.Title)
	}
	assert.Contains(t, titles, "Due in 7 days: task +7")
	assert.Contains(t, titles, "Due in 3 days: task +3")
	assert.Contains(t, titles, "Due in 1 day: task +1")
}

func TestSendAlerts_OneClockPerRun(t *testing.T) {
	f := newAlertFixture(t)
	senior := testutil.NewTestUser("Meera", domain.RoleSeniorCA, testutil.WithUserID("u-senior"))
	require.NoError(t, f.users.Create(f.ctx, senior))

	// Just before midnight: every offset and recipient must still be stamped
	// with the same instant and counted against the same day.
	now := time.Date(2025, 7, 1, 23, 59, 59, 0, time.UTC)
	today := date(2025, 7, 1)
	for _, d := range []int{1, 3, 7} {
		f.addTask(t, fmt.Sprintf("due +%d", d), today.AddDate(0, 0, d), testutil.WithAssignee(f.junior.ID))
	}

	res, err := f.service(time.UTC).SendAlerts(f.ctx, at(now))
	require.NoError(t, err)
	assert.Equal(t, 9, res.SentCount, "3 tasks x (junior, partner, senior)")
	assert.True(t, res.RunAt.Equal(now))

	for _, u := range []*domain.User{f.junior, f.partner, senior} {
		notes, err := f.notifications.ListByRecipient(f.ctx, u.ID, false)
		require.NoError(t, err)
		require.Len(t, notes, 3, u.Name)
		for _, n := range notes {
			assert.True(t, n.CreatedAt.Equal(now), "%s: %s stamped %s", u.Name, n.Title, n.CreatedAt)
		}
	}

	// Rerunning on the same day sends nothing new.
	again, err := f.service(time.UTC).SendAlerts(f.ctx, at(now.Add(-time.Second)))
	require.NoError(t, err)
	assert.Zero(t, again.SentCount)
	assert.Equal(t, 9, again.SkippedCount)
}

func TestSendAlerts_SkipsCompletedTasks(t *testing.T) {
	f := newAlertFixture(t)
	today := date(2025, 7, 1)
	f.addTask(t, "done", today.AddDate(0, 0, 3), testutil.WithTaskStatus(domain.TaskCompleted))
	f.addTask(t, "open", today.AddDate(0, 0, 3), testutil.WithTaskStatus(domain.TaskInProgress))

	res, err := f.service(time.UTC).SendAlerts(f.ctx, at(today))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SentCount)
}

func TestSendAlerts_AssigneeAndManagersDeduplicated(t *testing.T) {
	f := newAlertFixture(t)
	senior := testutil.NewTestUser("Meera", domain.RoleSeniorCA, testutil.WithUserID("u-senior"))
	require.NoError(t, f.users.Create(f.ctx, senior))

	today := date(2025, 7, 1)
	f.addTask(t, "junior task", today.AddDate(0, 0, 7), testutil.WithAssignee(f.junior.ID))
	f.addTask(t, "partner task", today.AddDate(0, 0, 7), testutil.WithAssignee(f.partner.ID))

	res, err := f.service(time.UTC).SendAlerts(f.ctx, at(today))
	require.NoError(t, err)
	// junior task: junior + partner + senior; partner task: partner + senior.
	assert.Equal(t, 5, res.SentCount)

	for _, tc := range []struct {
		user *domain.User
		want int
	}{
		{f.junior, 1},
		{f.partner, 2},
		{senior, 2},
	} {
		notes, err := f.notifications.ListByRecipient(f.ctx, tc.user.ID, false)
		require.NoError(t, err)
		assert.Len(t, notes, tc.want, tc.user.Name)
	}
}

func TestSendAlerts_UsesConfiguredLocation(t *testing.T) {
	f := newAlertFixture(t)
	ist := time.FixedZone("IST", 5*60*60+30*60)
	f.addTask(t, "TDS deposit", date(2025, 8, 7))

	// 20:00 UTC on 5 Aug is already 6 Aug in India, so the task is one day out.
	now := time.Date(2025, 8, 5, 20, 0, 0, 0, time.UTC)

	res, err := f.service(ist).SendAlerts(f.ctx, at(now))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SentCount)
	assert.Equal(t, 1, res.Offsets[2].Sent)

	// Two hours later is still the same Indian calendar day.
	res, err = f.service(ist).SendAlerts(f.ctx, at(now.Add(2*time.Hour)))
	require.NoError(t, err)
	assert.Zero(t, res.SentCount)
	assert.Equal(t, 1, res.SkippedCount)

	res, err = f.service(time.UTC).SendAlerts(f.ctx, at(now))
	require.NoError(t, err)
	assert.Zero(t, res.SentCount, "in UTC the task is two days out")
}

type failingNotificationRepo struct {
	repository.NotificationRepo
	failFor string
}

func (r failingNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if n.RecipientID == r.failFor {
		return errors.New("injected notification failure")
	}
	return r.NotificationRepo.Create(ctx, n)
}

func TestSendAlerts_PartialFailureContinues(t *testing.T) {
	f := newAlertFixture(t)
	today := date(2025, 7, 1)
	f.addTask(t, "assigned", today.AddDate(0, 0, 1), testutil.WithAssignee(f.junior.ID))

	notifications := failingNotificationRepo{NotificationRepo: f.notifications, failFor: f.junior.ID}
	svc := NewAlertService(f.tasks, f.users, notifications, time.UTC)

	res, err := svc.SendAlerts(f.ctx, at(today))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SentCount)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0].String(), "injected notification failure")
	assert.Contains(t, res.Failures[0].Subject, f.junior.ID)
}

type failingUserRepo struct {
	repository.UserRepo
}

func (failingUserRepo) ListByRoles(context.Context, ...domain.Role) ([]*domain.User, error) {
	return nil, errors.New("users table locked")
}

func TestSendAlerts_ManagerLoadFailureAborts(t *testing.T) {
	f := newAlertFixture(t)
	svc := NewAlertService(f.tasks, failingUserRepo{}, f.notifications, time.UTC)

	_, err := svc.SendAlerts(f.ctx, at(date(2025, 7, 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading managers")
}

func TestPluralDays(t *testing.T) {
	assert.Equal(t, "1 day", pluralDays(1))
	assert.Equal(t, "0 days", pluralDays(0))
	assert.Equal(t, "3 days", pluralDays(3))
	assert.Equal(t, "7 days", pluralDays(7))
	assert.Equal(t, "21 days", pluralDays(21))
}

func TestAlertRecipients(t *testing.T) {
	managers := []*domain.User{{ID: "a"}, {ID: "b"}}

	assert.Equal(t, []string{"a", "b"}, alertRecipients(&domain.Task{}, managers))

	assignee := "b"
	assert.Equal(t, []string{"b", "a"}, alertRecipients(&domain.Task{AssignedTo: &assignee}, managers))

	other := "z"
	assert.Equal(t, []string{"z"}, alertRecipients(&domain.Task{AssignedTo: &other}, nil))
	assert.Empty(t, alertRecipients(&domain.Task{}, nil))
}
