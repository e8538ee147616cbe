package database

import (
	"context"
	"database/sql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		full_name     TEXT NOT NULL DEFAULT '',
		college       TEXT NOT NULL DEFAULT '',
		percentage    DOUBLE PRECISION NOT NULL DEFAULT 0,
		inter_marks   DOUBLE PRECISION NOT NULL DEFAULT 0,
		tenth_marks   DOUBLE PRECISION NOT NULL DEFAULT 0,
		passout_year  INTEGER NOT NULL DEFAULT 0,
		resume_ref    TEXT NOT NULL DEFAULT '',
		ats_score     INTEGER NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		skills       TEXT NOT NULL,
		recruiter_id UUID NOT NULL REFERENCES users (id),
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id         UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES users (id),
		job_id     UUID NOT NULL REFERENCES jobs (id),
		status     TEXT NOT NULL,
		score      INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (student_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS interviews (
		id           UUID PRIMARY KEY,
		student_id   UUID NOT NULL REFERENCES users (id),
		job_id       UUID NOT NULL REFERENCES jobs (id),
		scheduled_at TIMESTAMPTZ NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the tables on startup if they are missing. The
// UNIQUE (student_id, job_id) constraint is what makes concurrent duplicate
// applications resolve to exactly one winner.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
