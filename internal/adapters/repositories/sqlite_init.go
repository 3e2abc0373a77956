package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVoyagePlansQuery := `
	CREATE TABLE IF NOT EXISTS voyage_plans (
		plan_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		depart_at TEXT NOT NULL,
		fuel_kg REAL NOT NULL,
		violations INTEGER NOT NULL,
		generations INTEGER NOT NULL,
		route_json TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	);
	`

	createEvalCacheQuery := `
	CREATE TABLE IF NOT EXISTS eval_cache (
		route_key TEXT PRIMARY KEY,
		fuel_kg REAL NOT NULL,
		violations INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_voyage_plans_created_at
	ON voyage_plans(created_at);
	`

	statements := []string{
		createVoyagePlansQuery,
		createEvalCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Initialize the Postgres eval_cache schema. The voyage repository stays
// SQLite-backed; only the evaluation cache has a Postgres variant.
func InitPostgresEvalCacheSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS eval_cache (
		route_key TEXT PRIMARY KEY,
		fuel_kg DOUBLE PRECISION NOT NULL,
		violations INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create eval_cache: %w", err)
	}
	return nil
}
