package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the schema for device state and support tickets. Statements
// are portable between sqlite and postgres.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS device_state (
            namespace TEXT NOT NULL,
            state_key TEXT NOT NULL,
            value TEXT NOT NULL,
            updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (namespace, state_key)
        );`,
		`CREATE TABLE IF NOT EXISTS support_tickets (
            id TEXT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            email TEXT NOT NULL,
            telephone TEXT NOT NULL DEFAULT '',
            module TEXT NOT NULL DEFAULT '',
            priority TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            approver TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Open',
            sent BOOLEAN NOT NULL DEFAULT FALSE,
            last_modified_by TEXT NOT NULL DEFAULT '',
            last_modified_date TIMESTAMP,
            created_on TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_support_tickets_created_on ON support_tickets (created_on);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
