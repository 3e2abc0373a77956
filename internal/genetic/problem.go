package genetic

import (
	"context"
	"fmt"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Contract for route evaluation, satisfied by Problem and its decorators.
type Evaluator interface {
	// Evaluate returns the total fuel (kg) consumed along the route and
	// the number of waypoints flagged unsafe.
	Evaluate(ctx context.Context, route domain.Route) (fuelKg float64, violations int, err error)
}

// Computes the objective and constraint figures for candidate routes.
//
// The voyage calculator derives per-leg courses, positions and timings
// from the boat's nominal speed; the performance model turns those into
// hourly fuel rates, which are integrated over each leg's travel time.
// Constraints are counted per waypoint, not per leg: a route's violation
// count is the number of its waypoints sitting in an unsafe zone.
//
// Evaluations are read-only over the route and the collaborators, so a
// single Problem may evaluate many individuals concurrently.
type Problem struct {
	voyage      ports.VoyageCalculator
	boat        ports.PerformanceModel
	checker     ports.ConstraintChecker
	departAt    time.Time
	boatSpeedMS float64
}

func NewProblem(
	voyage ports.VoyageCalculator,
	boat ports.PerformanceModel,
	checker ports.ConstraintChecker,
	departAt time.Time,
	boatSpeedMS float64,
) (*Problem, error) {
	if voyage == nil {
		return nil, &ConfigurationError{Field: "voyage", Reason: "problem requires a voyage calculator"}
	}
	if boat == nil {
		return nil, &ConfigurationError{Field: "boat", Reason: "problem requires a performance model"}
	}
	if checker == nil {
		return nil, &ConfigurationError{Field: "checker", Reason: "problem requires a constraint checker"}
	}
	if boatSpeedMS <= 0 {
		return nil, &ConfigurationError{Field: "boatSpeedMS", Reason: "boat speed must be positive"}
	}
	return &Problem{
		voyage:      voyage,
		boat:        boat,
		checker:     checker,
		departAt:    departAt,
		boatSpeedMS: boatSpeedMS,
	}, nil
}

func (p *Problem) Evaluate(_ context.Context, route domain.Route) (float64, int, error) {
	if route.Len() < 2 {
		return 0, 0, &domain.InvalidRouteError{Op: "evaluate route", Len: route.Len(), Min: 2}
	}

	lats := route.Lats()
	lons := route.Lons()

	params, err := p.voyage.Derive(lats, lons, p.departAt, p.boatSpeedMS)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate route: derive voyage parameters: %w", err)
	}

	ship, err := p.boat.FuelRates(params.Courses, params.StartLats, params.StartLons, params.StartTimes)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate route: query performance model: %w", err)
	}
	if len(ship.FuelRates) != len(params.TravelSeconds) {
		return 0, 0, fmt.Errorf("evaluate route: performance model returned %d legs, want %d",
			len(ship.FuelRates), len(params.TravelSeconds))
	}

	var fuel float64
	for i, rate := range ship.FuelRates {
		// rate is hourly; integrate over the leg's travel time.
		fuel += rate / 3600 * params.TravelSeconds[i]
	}

	// Constraints are evaluated without a timestamp; time-dependent zones
	// are a known limitation of the checker contract.
	unsafe, err := p.checker.Unsafe(lats, lons, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("evaluate route: check constraints: %w", err)
	}
	violations := 0
	for _, bad := range unsafe {
		if bad {
			violations++
		}
	}

	return fuel, violations, nil
}
