package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SchemaVersion is the schema version this binary expects.
const SchemaVersion = 1

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		gender TEXT NOT NULL,
		age INTEGER NOT NULL,
		capital NUMERIC(12, 2) NOT NULL,
		mode TEXT NOT NULL,
		personality_json TEXT NOT NULL DEFAULT '{}',
		preferences_json TEXT NOT NULL DEFAULT '{}',
		prior_experiences_json TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id UUID PRIMARY KEY,
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		title VARCHAR(120) NOT NULL,
		description VARCHAR(600) NOT NULL,
		category TEXT NULL,
		price_band TEXT NULL,
		estimated_cost NUMERIC(12, 2) NULL,
		source_prompt_hash VARCHAR(64) NOT NULL DEFAULT '',
		content_hash VARCHAR(64) NOT NULL,
		budget_breakdown_json TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT uk_suggestion_profile_content_hash UNIQUE (profile_id, content_hash)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_suggestion_profile_created ON suggestions (profile_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS suggestion_feedback (
		id UUID PRIMARY KEY,
		suggestion_id UUID NOT NULL REFERENCES suggestions(id) ON DELETE CASCADE,
		profile_id UUID NOT NULL,
		verdict TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT uk_feedback_suggestion_profile UNIQUE (suggestion_id, profile_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_profile_created ON suggestion_feedback (profile_id, created_at)`,
}

// Migrate brings the schema up to SchemaVersion inside a single transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`); err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	if err := pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		logger.Debug("Schema up to date", zap.Int("version", current))
		return nil
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, SchemaVersion); err != nil {
		return fmt.Errorf("migrate: record version: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}

	logger.Info("Schema migrated", zap.Int("from", current), zap.Int("to", SchemaVersion))
	return nil
}
