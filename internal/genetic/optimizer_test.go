package genetic

import (
	"context"
	"testing"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/geo"
)

// distanceEvaluator scores a route by its total length, so the optimizer
// has a smooth objective without any external collaborators.
type distanceEvaluator struct{}

func (distanceEvaluator) Evaluate(_ context.Context, route domain.Route) (float64, int, error) {
	if route.Len() < 2 {
		return 0, 0, &domain.InvalidRouteError{Op: "evaluate route", Len: route.Len(), Min: 2}
	}
	var total float64
	for i := 1; i < route.Len(); i++ {
		total += geo.Distance(route[i-1], route[i])
	}
	return total, 0, nil
}

func testOptimizerConfig() Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 10
	cfg.Generations = 5
	cfg.ParallelEval = false
	cfg.Seed = 11
	return cfg
}

func newTestOptimizer(t *testing.T, cfg Config) *Optimizer {
	t.Helper()

	src := domain.Waypoint{Lat: 0.2, Lon: 0.2}
	dst := domain.Waypoint{Lat: 8.8, Lon: 8.8}

	init, err := NewGridBasedInitializer(src, dst, mustUniformGrid(t), &stubPathfinder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	crossover, err := NewTwoPointCrossover(DefaultConnectorSpacingM)
	if err != nil {
		t.Fatal(err)
	}
	mutation, err := NewSegmentShiftMutation(cfg.MutationProbability, cfg.MutationMaxOffsetDeg)
	if err != nil {
		t.Fatal(err)
	}

	opt, err := NewOptimizer(cfg, init, crossover, mutation, distanceEvaluator{})
	if err != nil {
		t.Fatal(err)
	}
	return opt
}

func TestOptimizerRunReturnsValidResult(t *testing.T) {
	cfg := testOptimizerConfig()
	opt := newTestOptimizer(t, cfg)

	res, err := opt.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Route.Len() < 2 {
		t.Fatalf("best route has %d waypoints", res.Route.Len())
	}
	src := domain.Waypoint{Lat: 0.2, Lon: 0.2}
	dst := domain.Waypoint{Lat: 8.8, Lon: 8.8}
	if res.Route.Source() != src {
		t.Errorf("best route starts at %v, want %v", res.Route.Source(), src)
	}
	if res.Route.Destination() != dst {
		t.Errorf("best route ends at %v, want %v", res.Route.Destination(), dst)
	}
	if res.FuelKg <= 0 {
		t.Errorf("fuel %v, want positive", res.FuelKg)
	}
	if res.Generations != cfg.Generations {
		t.Errorf("generations %d, want %d", res.Generations, cfg.Generations)
	}
}

func TestOptimizerIsDeterministicUnderSeed(t *testing.T) {
	cfg := testOptimizerConfig()

	first, err := newTestOptimizer(t, cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := newTestOptimizer(t, cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !first.Route.Equal(second.Route) {
		t.Error("same seed must reproduce the same best route")
	}
	if first.FuelKg != second.FuelKg {
		t.Errorf("fuel differs: %v vs %v", first.FuelKg, second.FuelKg)
	}
}

func TestNewOptimizerValidation(t *testing.T) {
	cfg := testOptimizerConfig()

	init, err := NewGridBasedInitializer(domain.Waypoint{}, domain.Waypoint{Lat: 1, Lon: 1}, mustUniformGrid(t), &stubPathfinder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	crossover, err := NewTwoPointCrossover(DefaultConnectorSpacingM)
	if err != nil {
		t.Fatal(err)
	}
	mutation, err := NewSegmentShiftMutation(0.7, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewOptimizer(cfg, nil, crossover, mutation, distanceEvaluator{}); err == nil {
		t.Error("expected error for nil initializer")
	}
	if _, err := NewOptimizer(cfg, init, nil, mutation, distanceEvaluator{}); err == nil {
		t.Error("expected error for nil crossover")
	}
	if _, err := NewOptimizer(cfg, init, crossover, nil, distanceEvaluator{}); err == nil {
		t.Error("expected error for nil mutation")
	}
	if _, err := NewOptimizer(cfg, init, crossover, mutation, nil); err == nil {
		t.Error("expected error for nil evaluator")
	}

	bad := cfg
	bad.PopulationSize = 1
	if _, err := NewOptimizer(bad, init, crossover, mutation, distanceEvaluator{}); err == nil {
		t.Error("expected error for population of 1")
	}
}
