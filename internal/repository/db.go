package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/etldocs/doctext/internal/common"
)

// Open picks the backend from the configuration: Postgres when a DSN is
// set, SQLite otherwise.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if cfg.DSN != "" {
		return OpenPostgres(ctx, cfg, logger)
	}
	return OpenSQLite(ctx, cfg.SQLitePath, logger)
}

// OpenPostgres creates a pgx pool and wraps it for sqlx.
func OpenPostgres(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "doctext"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	db := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("successfully connected to database")
	return db, nil
}

// OpenSQLite opens a local SQLite database (":memory:" for in-memory use)
// and applies the schema. Used by the batch tool and tests.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*sqlx.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, err
	}
	// modernc sqlite serializes access per connection; a single connection
	// avoids table-lock errors under concurrent writers
	db.SetMaxOpenConns(1)
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Schema statements are executed one by one: the pgx stdlib driver rejects
// multi-statement strings in its extended protocol.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	source_kind TEXT NOT NULL,
	raw_text TEXT NOT NULL,
	uploaded_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS process_jobs (
	id TEXT PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES documents(id),
	status TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP,
	error_message TEXT,
	normalized_text TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	word_count INTEGER NOT NULL DEFAULT 0,
	char_count INTEGER NOT NULL DEFAULT 0,
	entities_json TEXT,
	keyword_count INTEGER NOT NULL DEFAULT 0,
	chunk_count INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE INDEX IF NOT EXISTS idx_process_jobs_document ON process_jobs(document_id)`,
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
