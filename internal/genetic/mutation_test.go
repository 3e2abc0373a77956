package genetic

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

func testRoute() domain.Route {
	return domain.Route{
		{Lat: 0, Lon: 0},
		{Lat: 1, Lon: 1.2},
		{Lat: 2, Lon: 2.1},
		{Lat: 3, Lon: 2.9},
		{Lat: 4, Lon: 4.2},
		{Lat: 5, Lon: 5},
	}
}

func TestSegmentShiftPreservesEndpointsAndPerturbs(t *testing.T) {
	mut, err := NewSegmentShiftMutation(1, DefaultMutationMaxOffsetDeg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for seed := int64(0); seed < 30; seed++ {
		route := testRoute()
		before := route.Clone()

		out, err := mut.Mutate(route, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		if out[0] != route[0] || out[out.Len()-1] != route[route.Len()-1] {
			t.Fatalf("seed %d: endpoints moved: %v .. %v", seed, out[0], out[out.Len()-1])
		}
		if out.Equal(route) {
			t.Fatalf("seed %d: probability 1 must perturb a route of length %d", seed, route.Len())
		}
		if !route.Equal(before) {
			t.Fatalf("seed %d: input route was modified", seed)
		}
	}
}

func TestSegmentShiftMovesContiguousSegmentDiagonally(t *testing.T) {
	mut, err := NewSegmentShiftMutation(1, DefaultMutationMaxOffsetDeg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for seed := int64(0); seed < 30; seed++ {
		route := testRoute()
		out, err := mut.Mutate(route, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		var offset float64
		first, last := -1, -1
		for i := range route {
			dLat := out[i].Lat - route[i].Lat
			dLon := out[i].Lon - route[i].Lon
			// adding the offset to differing magnitudes rounds differently
			// in the last ulps, so compare within a tolerance
			if math.Abs(dLat-dLon) > 1e-9 {
				t.Fatalf("seed %d: waypoint %d moved (%v, %v); latitude and longitude must shift together", seed, i, dLat, dLon)
			}
			if dLat == 0 {
				continue
			}
			if first == -1 {
				first = i
				offset = dLat
			}
			last = i
			if math.Abs(dLat-offset) > 1e-9 {
				t.Fatalf("seed %d: waypoint %d offset %v, want shared offset %v", seed, i, dLat, offset)
			}
		}

		if first < 1 || last > route.Len()-2 {
			t.Fatalf("seed %d: shifted segment [%d, %d] touches an endpoint", seed, first, last)
		}
		for i := first; i <= last; i++ {
			if out[i].Lat == route[i].Lat {
				t.Fatalf("seed %d: segment [%d, %d] is not contiguous at %d", seed, first, last, i)
			}
		}
		if math.Abs(offset) > DefaultMutationMaxOffsetDeg {
			t.Fatalf("seed %d: offset %v exceeds the configured maximum", seed, offset)
		}
	}
}

func TestSegmentShiftZeroProbabilityIsIdentity(t *testing.T) {
	mut, err := NewSegmentShiftMutation(0, DefaultMutationMaxOffsetDeg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route := testRoute()
	out, err := mut.Mutate(route, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equal(route) {
		t.Fatal("probability 0 must be the identity")
	}

	// identity still returns a copy
	out[1] = domain.Waypoint{Lat: 99, Lon: 99}
	if route[1].Lat == 99 {
		t.Fatal("output aliases the input route")
	}
}

func TestSegmentShiftLeavesShortRoutesAlone(t *testing.T) {
	mut, err := NewSegmentShiftMutation(1, DefaultMutationMaxOffsetDeg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route := domain.Route{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}
	out, err := mut.Mutate(route, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equal(route) {
		t.Fatal("routes without interior waypoints must pass through unchanged")
	}
}

func TestSegmentShiftValidation(t *testing.T) {
	var cfgErr *ConfigurationError
	if _, err := NewSegmentShiftMutation(1.5, 1); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for probability 1.5, got %v", err)
	}
	if _, err := NewSegmentShiftMutation(0.5, 0); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for zero offset, got %v", err)
	}
}

func TestDeleteRepathReplacesInteriorSegment(t *testing.T) {
	grid := mustUniformGrid(t)
	mut, err := NewDeleteRepathMutation(1, grid, &stubPathfinder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Length 3 forces start = end = 1, so the repath is fully predictable:
	// the interior waypoint snaps to its nearest cell center.
	route := domain.Route{{Lat: 0, Lon: 0}, {Lat: 4.2, Lon: 4.4}, {Lat: 9, Lon: 9}}
	out, err := mut.Mutate(route, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Route{{Lat: 0, Lon: 0}, {Lat: 4, Lon: 4}, {Lat: 9, Lon: 9}}
	if !out.Equal(want) {
		t.Fatalf("mutated route = %v, want %v", out, want)
	}
}

func TestDeleteRepathValidation(t *testing.T) {
	grid := mustUniformGrid(t)

	var cfgErr *ConfigurationError
	if _, err := NewDeleteRepathMutation(0.5, nil, &stubPathfinder{}); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for nil grid, got %v", err)
	}
	if _, err := NewDeleteRepathMutation(0.5, grid, nil); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for nil pathfinder, got %v", err)
	}
	if _, err := NewDeleteRepathMutation(-0.1, grid, &stubPathfinder{}); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for negative probability, got %v", err)
	}
}
