package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

const taskColumns = `t.id, t.title, t.description, t.client_id, t.task_type, t.service, t.status, t.priority,
	t.due_date, t.fiscal_year, t.assigned_to, t.created_by, t.source, t.completed_at, t.created_at, t.updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(q db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: q}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, title, description, client_id, task_type, service, status, priority,
		due_date, fiscal_year, assigned_to, created_by, source, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.ClientID,
		string(t.TaskType),
		string(t.Service),
		string(t.Status),
		string(t.Priority),
		formatDate(t.DueDate),
		t.FiscalYear,
		nullableString(t.AssignedTo),
		t.CreatedBy,
		string(t.Source),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("task %q for client %s in %s: %w", t.Title, t.ClientID, t.FiscalYear, ErrDuplicate)
		}
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) FindByKey(ctx context.Context, clientID, title, fiscalYear string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks t WHERE t.client_id = ? AND t.title = ? AND t.fiscal_year = ?`,
		clientID, title, fiscalYear,
	)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %q for client %s in %s: %w", title, clientID, fiscalYear, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]DueTask, error) {
	query := `SELECT ` + taskColumns + `, c.name
		FROM tasks t
		JOIN clients c ON c.id = t.client_id
		WHERE t.status != 'completed'
		  AND t.due_date >= ? AND t.due_date <= ?
		ORDER BY t.id`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing due tasks: %w", err)
	}
	defer rows.Close()

	var out []DueTask
	for rows.Next() {
		var clientName string
		t, err := scanTask(rows, &clientName)
		if err != nil {
			return nil, err
		}
		out = append(out, DueTask{Task: *t, ClientName: clientName})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due tasks: %w", err)
	}
	return out, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, f TaskFilter) ([]*domain.Task, error) {
	var where []string
	var args []any
	if f.FiscalYear != "" {
		where = append(where, "t.fiscal_year = ?")
		args = append(args, f.FiscalYear)
	}
	if f.ClientID != "" {
		where = append(where, "t.client_id = ?")
		args = append(args, f.ClientID)
	}
	if f.Status != "" {
		where = append(where, "t.status = ?")
		args = append(args, string(f.Status))
	}
	if f.Source != "" {
		where = append(where, "t.source = ?")
		args = append(args, string(f.Source))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY t.due_date, t.title, t.client_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?, due_date = ?,
		assigned_to = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		formatDate(t.DueDate),
		nullableString(t.AssignedTo),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		formatTimestamp(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// scanTask reads taskColumns followed by any extra destinations. A missing
// row is returned as sql.ErrNoRows for the caller to translate.
func scanTask(s rowScanner, extra ...any) (*domain.Task, error) {
	var t domain.Task
	var taskType, service, status, priority, source string
	var dueDate, createdAt, updatedAt string
	var assignedTo, completedAt sql.NullString

	dest := []any{
		&t.ID, &t.Title, &t.Description, &t.ClientID, &taskType, &service, &status, &priority,
		&dueDate, &t.FiscalYear, &assignedTo, &t.CreatedBy, &source, &completedAt, &createdAt, &updatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.TaskType = domain.TaskType(taskType)
	t.Service = domain.Service(service)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.Source = domain.TaskSource(source)
	t.AssignedTo = stringPtr(assignedTo)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	var err error
	if t.DueDate, err = time.Parse(dateLayout, dueDate); err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
