package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

// SQLiteClientRepo implements ClientRepo. Services live in client_services.
type SQLiteClientRepo struct {
	db db.DBTX
}

func NewSQLiteClientRepo(q db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: q}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, pan, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.PAN, formatTimestamp(c.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client %q: %w", c.Name, ErrDuplicate)
		}
		return fmt.Errorf("inserting client: %w", err)
	}
	for _, svc := range c.Services {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO client_services (client_id, service) VALUES (?, ?)`,
			c.ID, string(svc),
		); err != nil {
			return fmt.Errorf("inserting service %q for client %s: %w", svc, c.ID, err)
		}
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, pan, created_at FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	services, err := r.loadServices(ctx, `SELECT client_id, service FROM client_services WHERE client_id = ? ORDER BY service`, id)
	if err != nil {
		return nil, err
	}
	c.Services = services[c.ID]
	return c, nil
}

func (r *SQLiteClientRepo) ListAll(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, pan, created_at FROM clients ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	rows.Close()

	services, err := r.loadServices(ctx, `SELECT client_id, service FROM client_services ORDER BY client_id, service`)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		c.Services = services[c.ID]
	}
	return clients, nil
}

func (r *SQLiteClientRepo) loadServices(ctx context.Context, query string, args ...any) (map[string][]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading client services: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Service)
	for rows.Next() {
		var clientID, svc string
		if err := rows.Scan(&clientID, &svc); err != nil {
			return nil, fmt.Errorf("scanning client service: %w", err)
		}
		out[clientID] = append(out[clientID], domain.Service(svc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client services: %w", err)
	}
	return out, nil
}

func scanClient(s rowScanner) (*domain.Client, error) {
	var c domain.Client
	var createdAt string
	if err := s.Scan(&c.ID, &c.Name, &c.PAN, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing client created_at: %w", err)
	}
	return &c, nil
}
