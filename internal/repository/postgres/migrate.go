package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are the idempotent schema statements, applied in order before
// the server accepts traffic.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		salt TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ NOT NULL,
		location TEXT NOT NULL,
		image_url TEXT,
		max_participants INTEGER CHECK (max_participants > 0),
		creator_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events (date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_creator ON events (creator_id)`,
	`CREATE TABLE IF NOT EXISTS event_registrations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (event_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_event_registrations_user ON event_registrations (user_id)`,
}

// Migrate applies the schema. Safe to run on every boot; all statements are
// IF NOT EXISTS.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
