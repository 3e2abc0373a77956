package genetic

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Decorates an Evaluator with a digest-keyed result cache.
//
// Crossover and mutation frequently reproduce routes already evaluated in
// earlier generations; caching by route digest skips the performance model
// for those. The cache is best-effort: lookup and store failures are
// logged and the evaluation falls through to the inner evaluator.
type CachedEvaluator struct {
	inner Evaluator
	cache ports.EvaluationCache
}

func NewCachedEvaluator(inner Evaluator, cache ports.EvaluationCache) (*CachedEvaluator, error) {
	if inner == nil {
		return nil, &ConfigurationError{Field: "inner", Reason: "cached evaluator requires an inner evaluator"}
	}
	if cache == nil {
		return nil, &ConfigurationError{Field: "cache", Reason: "cached evaluator requires a cache"}
	}
	return &CachedEvaluator{inner: inner, cache: cache}, nil
}

func (c *CachedEvaluator) Evaluate(ctx context.Context, route domain.Route) (float64, int, error) {
	key := RouteKey(route)

	if res, ok, err := c.cache.GetEval(ctx, key); err != nil {
		log.Printf("op=evaluate cache=get key=%s err=%v", key, err)
	} else if ok {
		return res.FuelKg, res.Violations, nil
	}

	fuel, violations, err := c.inner.Evaluate(ctx, route)
	if err != nil {
		return 0, 0, err
	}

	if err := c.cache.PutEval(ctx, key, ports.EvalResult{FuelKg: fuel, Violations: violations}); err != nil {
		log.Printf("op=evaluate cache=put key=%s err=%v", key, err)
	}
	return fuel, violations, nil
}

// RouteKey returns a stable digest of a route's exact coordinates, usable
// as a cache key. Routes the duplicate eliminator treats as distinct get
// distinct digests, up to hash collisions.
func RouteKey(route domain.Route) string {
	buf := make([]byte, 0, len(route)*16)
	var scratch [8]byte
	for _, w := range route {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(w.Lat))
		buf = append(buf, scratch[:]...)
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(w.Lon))
		buf = append(buf, scratch[:]...)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(buf))
}
