package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres: empty dsn")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL DEFAULT '',
	photo_url  TEXT NOT NULL DEFAULT '',
	role       TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS pets (
	id                TEXT PRIMARY KEY,
	owner_email       TEXT NOT NULL,
	name              TEXT NOT NULL,
	age               INTEGER NOT NULL DEFAULT 0,
	category          TEXT NOT NULL DEFAULT '',
	location          TEXT NOT NULL DEFAULT '',
	image_url         TEXT NOT NULL DEFAULT '',
	short_description TEXT NOT NULL DEFAULT '',
	long_description  TEXT NOT NULL DEFAULT '',
	adoption_status   TEXT NOT NULL DEFAULT 'not_adopted',
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS pets_owner_email_idx ON pets (owner_email);
CREATE INDEX IF NOT EXISTS pets_adoption_status_idx ON pets (adoption_status);

CREATE TABLE IF NOT EXISTS donation_campaigns (
	id                TEXT PRIMARY KEY,
	owner_email       TEXT NOT NULL,
	pet_name          TEXT NOT NULL,
	pet_picture       TEXT NOT NULL DEFAULT '',
	target_cents      BIGINT NOT NULL DEFAULT 0,
	last_date         DATE,
	short_description TEXT NOT NULL DEFAULT '',
	long_description  TEXT NOT NULL DEFAULT '',
	paused            BOOLEAN NOT NULL DEFAULT FALSE,
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS donation_campaigns_owner_email_idx ON donation_campaigns (owner_email);

CREATE TABLE IF NOT EXISTS adoption_requests (
	id              TEXT PRIMARY KEY,
	pet_id          TEXT NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
	requester_email TEXT NOT NULL,
	name            TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	address         TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS adoption_requests_pet_id_idx ON adoption_requests (pet_id);

CREATE TABLE IF NOT EXISTS donations (
	id                TEXT PRIMARY KEY,
	campaign_id       TEXT NOT NULL,
	donor_email       TEXT NOT NULL,
	donor_name        TEXT NOT NULL DEFAULT '',
	amount_cents      BIGINT NOT NULL,
	payment_intent_id TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS donations_campaign_id_idx ON donations (campaign_id);
CREATE INDEX IF NOT EXISTS donations_donor_email_idx ON donations (donor_email);
`

// EnsureSchema crea las tablas si no existen. Idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

// withTx corre fn en una transacción; rollback si fn falla.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func newID() string { return uuid.NewString() }
