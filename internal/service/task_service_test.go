package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/alexanderramin/filingdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CompleteAndAssign(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	clients := repository.NewSQLiteClientRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	users := repository.NewSQLiteUserRepo(database)

	c := testutil.NewTestClient("Acme")
	require.NoError(t, clients.Create(ctx, c))
	u := testutil.NewTestUser("Ravi", domain.RoleJuniorCA)
	require.NoError(t, users.Create(ctx, u))
	task := testutil.NewTestTask(c.ID, "GSTR-1 - April 2025")
	require.NoError(t, tasks.Create(ctx, task))

	svc := NewTaskService(tasks, users)

	assigned, err := svc.Assign(ctx, task.ID, u.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, u.ID, *assigned.AssignedTo)

	_, err = svc.Assign(ctx, task.ID, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	done, err := svc.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	stored, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, stored.Status)
	assert.Equal(t, u.ID, *stored.AssignedTo)

	_, err = svc.Assign(ctx, task.ID, u.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed")

	completed, err := svc.List(ctx, repository.TaskFilter{Status: domain.TaskCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	_, err = svc.Complete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNotificationService_ListForUser(t *testing.T) {
	f := newAlertFixture(t)
	f.addTask(t, "due soon", date(2025, 7, 4))
	_, err := f.service(nil).SendAlerts(f.ctx, at(date(2025, 7, 1)))
	require.NoError(t, err)

	svc := NewNotificationService(f.users, f.notifications)
	notes, err := svc.ListForUser(f.ctx, f.partner.ID, true)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Due in 3 days: due soon", notes[0].Title)

	notes, err = svc.ListForUser(f.ctx, f.junior.ID, false)
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, err = svc.ListForUser(f.ctx, "ghost", false)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
