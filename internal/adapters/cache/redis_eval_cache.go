package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Redis-backed cache of route evaluation results, keyed by route digest.
// Entries expire after TTL so long-running deployments do not accumulate
// digests for routes that never recur; a zero TTL keeps them forever.
type RedisEvalCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisEvalCache(client *redis.Client, ttl time.Duration) *RedisEvalCache {
	return &RedisEvalCache{Client: client, TTL: ttl}
}

type redisEvalEntry struct {
	FuelKg     float64 `json:"fuel_kg"`
	Violations int     `json:"violations"`
}

// Fetch the cached evaluation for one route digest.
func (r *RedisEvalCache) GetEval(ctx context.Context, key string) (ports.EvalResult, bool, error) {
	if r.Client == nil {
		return ports.EvalResult{}, false, errors.New("eval cache: redis client is nil")
	}
	if key == "" {
		return ports.EvalResult{}, false, errors.New("get eval cache: key must not be empty")
	}

	raw, err := r.Client.Get(ctx, redisEvalKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.EvalResult{}, false, nil
	}
	if err != nil {
		return ports.EvalResult{}, false, fmt.Errorf("get eval cache: redis get: %w", err)
	}

	var entry redisEvalEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return ports.EvalResult{}, false, fmt.Errorf("get eval cache: parse entry: %w", err)
	}
	return ports.EvalResult{FuelKg: entry.FuelKg, Violations: entry.Violations}, true, nil
}

// Store one evaluation result, replacing any earlier entry for the key.
func (r *RedisEvalCache) PutEval(ctx context.Context, key string, res ports.EvalResult) error {
	if r.Client == nil {
		return errors.New("eval cache: redis client is nil")
	}
	if key == "" {
		return errors.New("insert eval cache: key must not be empty")
	}

	raw, err := json.Marshal(redisEvalEntry{FuelKg: res.FuelKg, Violations: res.Violations})
	if err != nil {
		return fmt.Errorf("insert eval cache key=%q: marshal entry: %w", key, err)
	}
	if err := r.Client.Set(ctx, redisEvalKey(key), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert eval cache key=%q: redis set: %w", key, err)
	}
	return nil
}

func redisEvalKey(key string) string { return "eval:" + key }
