package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// Migrate runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE has no IF NOT EXISTS; a re-run reports the column.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		pan         TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_clients_pan ON clients(pan) WHERE pan != ''`,

	`CREATE TABLE IF NOT EXISTS client_services (
		client_id   TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		service     TEXT NOT NULL
		            CHECK(service IN ('Income Tax Filing','Tax Audit','Transfer Pricing','GST Filing','TDS Filing','ROC Compliance')),
		PRIMARY KEY (client_id, service)
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		role        TEXT NOT NULL
		            CHECK(role IN ('partner','senior_ca','junior_ca','article')),
		created_at  TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email) WHERE email != ''`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		task_type    TEXT NOT NULL,
		service      TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK(status IN ('pending','in_progress','review','completed','overdue')),
		priority     TEXT NOT NULL DEFAULT 'medium'
		             CHECK(priority IN ('low','medium','high','urgent')),
		due_date     TEXT NOT NULL,
		fiscal_year  TEXT NOT NULL,
		assigned_to  TEXT REFERENCES users(id) ON DELETE SET NULL,
		created_by   TEXT NOT NULL,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	// A (client, title, fiscal year) triple identifies one obligation. The
	// synchronizer relies on this index when two runs race.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_client_title_fy ON tasks(client_id, title, fiscal_year)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_fiscal_year ON tasks(fiscal_year)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id           TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type         TEXT NOT NULL,
		title        TEXT NOT NULL,
		message      TEXT NOT NULL DEFAULT '',
		link         TEXT NOT NULL DEFAULT '',
		task_id      TEXT NOT NULL DEFAULT '',
		alert_days   INTEGER NOT NULL DEFAULT 0,
		is_read      INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_dedup ON notifications(recipient_id, task_id, alert_days, created_at)`,

	`CREATE TABLE IF NOT EXISTS documents (
		id                  TEXT PRIMARY KEY,
		client_id           TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		name                TEXT NOT NULL,
		category            TEXT NOT NULL DEFAULT 'other'
		                    CHECK(category IN ('identity','income','bank','investment','gst','tds','financial_statement','corporate','other')),
		verification_status TEXT NOT NULL DEFAULT 'pending'
		                    CHECK(verification_status IN ('pending','verified','rejected')),
		uploaded_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_client ON documents(client_id)`,

	// v2: record whether a task came from the synchronizer.
	`ALTER TABLE tasks ADD COLUMN source TEXT NOT NULL DEFAULT 'manual' CHECK(source IN ('sync','manual'))`,
}
