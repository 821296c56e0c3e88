package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

type SQLiteDocumentRepo struct {
	db db.DBTX
}

func NewSQLiteDocumentRepo(q db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: q}
}

func (r *SQLiteDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, client_id, name, category, verification_status, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.ClientID, d.Name, string(d.Category), string(d.VerificationStatus), formatTimestamp(d.UploadedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

// ListByClient returns the client's documents, oldest upload first.
func (r *SQLiteDocumentRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, name, category, verification_status, uploaded_at
		FROM documents WHERE client_id = ? ORDER BY uploaded_at, id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		var d domain.Document
		var category, status, uploadedAt string
		if err := rows.Scan(&d.ID, &d.ClientID, &d.Name, &category, &status, &uploadedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		d.Category = domain.DocumentCategory(category)
		d.VerificationStatus = domain.VerificationStatus(status)
		if d.UploadedAt, err = time.Parse(time.RFC3339, uploadedAt); err != nil {
			return nil, fmt.Errorf("parsing uploaded_at: %w", err)
		}
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}
