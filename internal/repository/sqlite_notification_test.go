package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationTestSetup(t *testing.T) (*SQLiteNotificationRepo, *domain.User) {
	t.Helper()
	database := testutil.NewTestDB(t)
	user := testutil.NewTestUser("Priya", domain.RolePartner)
	require.NoError(t, NewSQLiteUserRepo(database).Create(context.Background(), user))
	return NewSQLiteNotificationRepo(database), user
}

func newNotification(recipientID, taskID string, alertDays int, createdAt time.Time) *domain.Notification {
	return &domain.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        domain.NotificationTaskDue,
		Title:       "Due soon",
		Link:        "/tasks/" + taskID,
		Metadata:    domain.NotificationMetadata{TaskID: taskID, AlertDays: alertDays},
		CreatedAt:   createdAt,
	}
}

func TestNotificationRepo_ExistsForDay(t *testing.T) {
	repo, user := notificationTestSetup(t)
	ctx := context.Background()

	ist := time.FixedZone("IST", 5*3600+1800)
	todayStart := time.Date(2025, time.May, 19, 0, 0, 0, 0, ist)
	tomorrow := todayStart.AddDate(0, 0, 1)

	require.NoError(t, repo.Create(ctx, newNotification(user.ID, "task-1", 1, todayStart.Add(9*time.Hour))))

	ok, err := repo.ExistsForDay(ctx, user.ID, "task-1", 1, todayStart, tomorrow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsForDay(ctx, user.ID, "task-1", 3, todayStart, tomorrow)
	require.NoError(t, err)
	assert.False(t, ok, "different offset")

	ok, err = repo.ExistsForDay(ctx, user.ID, "task-2", 1, todayStart, tomorrow)
	require.NoError(t, err)
	assert.False(t, ok, "different task")

	ok, err = repo.ExistsForDay(ctx, user.ID, "task-1", 1, tomorrow, tomorrow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, ok, "next day")
}

func TestNotificationRepo_ExistsForDay_BoundsInLocalDay(t *testing.T) {
	repo, user := notificationTestSetup(t)
	ctx := context.Background()

	ist := time.FixedZone("IST", 5*3600+1800)
	todayStart := time.Date(2025, time.May, 19, 0, 0, 0, 0, ist)

	// 23:59 IST on the previous day is 18:29 UTC on the 18th.
	require.NoError(t, repo.Create(ctx, newNotification(user.ID, "task-1", 7, todayStart.Add(-time.Minute))))
	ok, err := repo.ExistsForDay(ctx, user.ID, "task-1", 7, todayStart, todayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, newNotification(user.ID, "task-1", 7, todayStart)))
	ok, err = repo.ExistsForDay(ctx, user.ID, "task-1", 7, todayStart, todayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, ok, "lower bound is inclusive")
}

func TestNotificationRepo_ListByRecipient(t *testing.T) {
	repo, user := notificationTestSetup(t)
	ctx := context.Background()

	base := time.Date(2025, time.May, 19, 4, 0, 0, 0, time.UTC)
	older := newNotification(user.ID, "task-1", 7, base)
	newer := newNotification(user.ID, "task-2", 3, base.Add(time.Hour))
	read := newNotification(user.ID, "task-3", 1, base.Add(2*time.Hour))
	read.Read = true
	for _, n := range []*domain.Notification{older, newer, read} {
		require.NoError(t, repo.Create(ctx, n))
	}

	all, err := repo.ListByRecipient(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, read.ID, all[0].ID, "newest first")
	assert.True(t, all[0].Read)
	assert.Equal(t, domain.NotificationMetadata{TaskID: "task-1", AlertDays: 7}, all[2].Metadata)
	assert.Equal(t, base, all[2].CreatedAt)

	unread, err := repo.ListByRecipient(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, newer.ID, unread[0].ID)
}

func TestNotificationRepo_UnknownRecipientRejected(t *testing.T) {
	repo, _ := notificationTestSetup(t)

	err := repo.Create(context.Background(), newNotification("ghost", "task-1", 1, time.Now()))
	assert.Error(t, err)
}
