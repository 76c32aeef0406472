package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotInitialized = errors.New("pet repo not initialized")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS hotel_pets (
	seq              BIGSERIAL PRIMARY KEY,
	registry_session UUID NOT NULL,
	id               TEXT NOT NULL,
	name             TEXT NOT NULL,
	species          TEXT NOT NULL,
	breed            TEXT NOT NULL,
	sex              TEXT NOT NULL,
	birth_date       TEXT NOT NULL,
	age              TEXT NOT NULL,
	microchip        TEXT NOT NULL,
	location         TEXT NOT NULL,
	image_url        TEXT NOT NULL,
	is_service_animal        BOOLEAN NOT NULL DEFAULT FALSE,
	is_sterilized            BOOLEAN NOT NULL DEFAULT FALSE,
	coexists_with_other_pets BOOLEAN NOT NULL DEFAULT FALSE,
	health_status    TEXT NOT NULL,
	health_detail    TEXT NOT NULL DEFAULT '',
	allergies        TEXT NOT NULL,
	medications      TEXT NOT NULL,
	diseases         JSONB NOT NULL DEFAULT '[]',
	vaccines         JSONB NOT NULL DEFAULT '[]',
	food_main        TEXT NOT NULL,
	diet_type        TEXT NOT NULL,
	daily_amount     TEXT NOT NULL,
	activity_level   TEXT NOT NULL,
	owner_email      TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (registry_session, id)
);
CREATE INDEX IF NOT EXISTS hotel_pets_session_seq_idx ON hotel_pets (registry_session, seq DESC);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
