package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// SQLite-backed cache of route evaluation results, keyed by route digest.
// Suitable for local single-process runs; the Postgres variant serves
// shared deployments.
type SqliteEvalCache struct {
	DB *sql.DB
}

func NewSqliteEvalCache(db *sql.DB) *SqliteEvalCache {
	return &SqliteEvalCache{DB: db}
}

// Fetch the cached evaluation for one route digest.
func (s *SqliteEvalCache) GetEval(ctx context.Context, key string) (ports.EvalResult, bool, error) {
	if s.DB == nil {
		return ports.EvalResult{}, false, errors.New("eval cache: db is nil")
	}
	if key == "" {
		return ports.EvalResult{}, false, errors.New("get eval cache: key must not be empty")
	}

	query := `
	SELECT
		fuel_kg,
		violations
	FROM eval_cache
	WHERE route_key = ?;
	`
	var res ports.EvalResult
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&res.FuelKg, &res.Violations)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.EvalResult{}, false, nil
	}
	if err != nil {
		return ports.EvalResult{}, false, fmt.Errorf("get eval cache: query eval_cache table: %w", err)
	}
	return res, true, nil
}

// Store one evaluation result, replacing any earlier entry for the key.
func (s *SqliteEvalCache) PutEval(ctx context.Context, key string, res ports.EvalResult) error {
	if s.DB == nil {
		return errors.New("eval cache: db is nil")
	}
	if key == "" {
		return errors.New("insert eval cache: key must not be empty")
	}

	query := `
	INSERT OR REPLACE INTO eval_cache (
		route_key,
		fuel_kg,
		violations
	)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, key, res.FuelKg, res.Violations); err != nil {
		return fmt.Errorf("insert eval cache key=%q: %w", key, err)
	}
	return nil
}
