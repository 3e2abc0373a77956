package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/platform/obs"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// SQLEvalCache is a Postgres-backed cache of route evaluation results,
// keyed by route digest. Keys are expected to be stable digests produced
// by the caller.
type SQLEvalCache struct {
	DB *sql.DB
}

func NewSQLEvalCache(db *sql.DB) *SQLEvalCache {
	return &SQLEvalCache{DB: db}
}

// Fetch the cached evaluation for one route digest.
func (s *SQLEvalCache) GetEval(ctx context.Context, key string) (_ ports.EvalResult, _ bool, err error) {
	defer obs.Time(ctx, "eval.cache.Get")(&err)

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
	WHERE route_key = $1;
	`
	var res ports.EvalResult
	err = s.DB.QueryRowContext(ctx, query, key).Scan(&res.FuelKg, &res.Violations)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.EvalResult{}, false, nil
	}
	if err != nil {
		return ports.EvalResult{}, false, fmt.Errorf("get eval cache: query eval_cache table: %w", err)
	}
	return res, true, nil
}

// Store one evaluation result, replacing any earlier entry for the key.
func (s *SQLEvalCache) PutEval(ctx context.Context, key string, res ports.EvalResult) (err error) {
	defer obs.Time(ctx, "eval.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("eval cache: db is nil")
	}
	if key == "" {
		return errors.New("insert eval cache: key must not be empty")
	}

	query := `
	INSERT INTO eval_cache (
		route_key,
		fuel_kg,
		violations
	)
	VALUES ($1, $2, $3)
	ON CONFLICT (route_key) DO UPDATE SET
		fuel_kg = EXCLUDED.fuel_kg,
		violations = EXCLUDED.violations;
	`
	if _, err := s.DB.ExecContext(ctx, query, key, res.FuelKg, res.Violations); err != nil {
		return fmt.Errorf("insert eval cache key=%q: %w", key, err)
	}
	return nil
}
