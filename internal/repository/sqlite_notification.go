package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo. Metadata is stored in
// the task_id and alert_days columns so the de-duplication lookup is indexed.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

func NewSQLiteNotificationRepo(q db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: q}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, recipient_id, type, title, message, link, task_id, alert_days, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.RecipientID,
		n.Type,
		n.Title,
		n.Message,
		n.Link,
		n.Metadata.TaskID,
		n.Metadata.AlertDays,
		boolToInt(n.Read),
		formatTimestamp(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ExistsForDay(ctx context.Context, recipientID, taskID string, alertDays int, from, to time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM notifications
		WHERE recipient_id = ? AND task_id = ? AND alert_days = ?
		  AND created_at >= ? AND created_at < ?
	)`
	var exists int
	err := r.db.QueryRowContext(ctx, query,
		recipientID, taskID, alertDays, formatTimestamp(from), formatTimestamp(to),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking notification for %s: %w", recipientID, err)
	}
	return intToBool(exists), nil
}

func (r *SQLiteNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := `SELECT id, recipient_id, type, title, message, link, task_id, alert_days, is_read, created_at
		FROM notifications WHERE recipient_id = ?`
	if unreadOnly {
		query += ` AND is_read = 0`
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var read int
		var createdAt string
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Message, &n.Link,
			&n.Metadata.TaskID, &n.Metadata.AlertDays, &read, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.Read = intToBool(read)
		if n.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing notification created_at: %w", err)
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return out, nil
}
