package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Timestamps are stored in UTC; SQLite
// keeps no timezone info, so readers must treat bare values as UTC.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id               INTEGER PRIMARY KEY,
    email            TEXT NOT NULL,
    password_hash    TEXT NOT NULL,
    name_first       TEXT NOT NULL,
    name_last        TEXT NOT NULL,
    date_created     DATETIME NOT NULL,
    active           INTEGER NOT NULL DEFAULT 1,
    last_login_at    DATETIME,
    current_login_at DATETIME,
    last_login_ip    TEXT,
    current_login_ip TEXT,
    login_count      INTEGER NOT NULL DEFAULT 0
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS inventories (
    id           INTEGER PRIMARY KEY,
    name         TEXT NOT NULL,
    date_created DATETIME NOT NULL,
    user_id      INTEGER NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_inventories_user ON inventories(user_id);

CREATE TABLE IF NOT EXISTS things (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    date_created  DATETIME NOT NULL,
    date_modified DATETIME NOT NULL,
    date_deleted  DATETIME,
    location      TEXT,
    details       TEXT,
    image         BLOB,
    image_mime    TEXT,
    inventory_id  INTEGER NOT NULL REFERENCES inventories(id)
);

CREATE INDEX IF NOT EXISTS idx_things_inventory ON things(inventory_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: Partial index to speed up active-thing listings.
	`CREATE INDEX IF NOT EXISTS idx_things_inventory_active
	     ON things(inventory_id) WHERE date_deleted IS NULL`,
}

// Migrate creates the schema and runs all pending migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
