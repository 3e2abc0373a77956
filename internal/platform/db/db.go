// Package db opens database handles for the adapters that need one.
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a pooled Postgres handle and verify the connection. The pool is
// sized for the evaluation cache's access pattern: many short point
// queries from parallel fitness evaluations.
func Open(databaseURL string) (*sql.DB, error) {
	pg, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pg.SetMaxOpenConns(10)
	pg.SetMaxIdleConns(10)
	pg.SetConnMaxLifetime(30 * time.Minute)

	if err := pg.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pg, nil
}
