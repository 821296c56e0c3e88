package testutil

import (
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/google/uuid"
)

// now is truncated to seconds so fixtures survive an RFC3339 round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Client options
type ClientOption func(*domain.Client)

func WithServices(svcs ...domain.Service) ClientOption {
	return func(c *domain.Client) {
		c.Services = svcs
	}
}

func WithPAN(pan string) ClientOption {
	return func(c *domain.Client) {
		c.PAN = pan
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	c := &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

func WithUserID(id string) UserOption {
	return func(u *domain.User) {
		u.ID = id
	}
}

func NewTestUser(name string, role domain.Role, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func WithFiscalYear(fy string) TaskOption {
	return func(t *domain.Task) {
		t.FiscalYear = fy
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithAssignee(userID string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedTo = &userID
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithTaskService(s domain.Service) TaskOption {
	return func(t *domain.Task) {
		t.Service = s
	}
}

// NewTestTask builds a pending manual task due in a week.
func NewTestTask(clientID, title string, opts ...TaskOption) *domain.Task {
	ts := now()
	t := &domain.Task{
		ID:         uuid.New().String(),
		Title:      title,
		ClientID:   clientID,
		TaskType:   domain.TaskGSTReturn,
		Service:    domain.ServiceGST,
		Status:     domain.TaskPending,
		Priority:   domain.PriorityMedium,
		DueDate:    time.Date(ts.Year(), ts.Month(), ts.Day()+7, 0, 0, 0, 0, time.UTC),
		FiscalYear: domain.CurrentFiscalYear(ts).String(),
		CreatedBy:  "test-operator",
		Source:     domain.SourceManual,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Document options
type DocumentOption func(*domain.Document)

func WithVerification(s domain.VerificationStatus) DocumentOption {
	return func(d *domain.Document) {
		d.VerificationStatus = s
	}
}

func WithUploadedAt(t time.Time) DocumentOption {
	return func(d *domain.Document) {
		d.UploadedAt = t.UTC().Truncate(time.Second)
	}
}

func NewTestDocument(clientID, name string, category domain.DocumentCategory, opts ...DocumentOption) *domain.Document {
	d := &domain.Document{
		ID:                 uuid.New().String(),
		ClientID:           clientID,
		Name:               name,
		Category:           category,
		VerificationStatus: domain.VerificationPending,
		UploadedAt:         now(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
