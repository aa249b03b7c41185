package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema 在啟動時建立資料表與索引（registrations 依 event / user 各有一個次級索引）
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			event_id UUID NOT NULL UNIQUE,
			name TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL,
			capacity INT NOT NULL CHECK (capacity > 0),
			registered_count INT NOT NULL DEFAULT 0 CHECK (registered_count >= 0),
			price NUMERIC(10, 2) NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'usd',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CHECK (registered_count <= capacity)
		);

		CREATE TABLE IF NOT EXISTS registrations (
			id SERIAL PRIMARY KEY,
			registration_id UUID NOT NULL UNIQUE,
			event_id UUID NOT NULL REFERENCES events (event_id),
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT '',
			user_email TEXT NOT NULL DEFAULT '',
			event_name TEXT NOT NULL DEFAULT '',
			event_date TIMESTAMPTZ NOT NULL,
			amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'usd',
			payment_intent_id TEXT,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			ticket_id TEXT,
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_registrations_event_id ON registrations (event_id);
		CREATE INDEX IF NOT EXISTS idx_registrations_user_id ON registrations (user_id);

		CREATE TABLE IF NOT EXISTS tickets (
			ticket_id TEXT PRIMARY KEY,
			registration_id UUID NOT NULL,
			event_id UUID NOT NULL,
			user_id TEXT NOT NULL,
			event_name TEXT NOT NULL DEFAULT '',
			attendee_name TEXT NOT NULL DEFAULT '',
			attendee_email TEXT NOT NULL DEFAULT '',
			qr_payload TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'valid',
			artifact_key TEXT NOT NULL,
			issued_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			used_at TIMESTAMPTZ
		);
	`

	_, err := pool.Exec(ctx, schema)
	return err
}
