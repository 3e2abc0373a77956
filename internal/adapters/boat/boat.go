// Package boat provides ship performance models for route evaluation.
// Models implement the PerformanceModel port; their internals stay
// deliberately simple, the optimizer only consumes fuel rates.
package boat

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// ConstantFuel burns the same hourly rate on every leg regardless of
// course, position or time. Useful as a baseline and for seeding runs
// where only route geometry matters.
type ConstantFuel struct {
	RateKgPerH float64
}

func NewConstantFuel(rateKgPerH float64) (*ConstantFuel, error) {
	if rateKgPerH <= 0 {
		return nil, errors.New("constant fuel: rate must be positive")
	}
	return &ConstantFuel{RateKgPerH: rateKgPerH}, nil
}

func (m *ConstantFuel) FuelRates(courses, startLats, startLons []float64, _ []time.Time) (domain.ShipParameters, error) {
	if err := checkLegs(courses, startLats, startLons); err != nil {
		return domain.ShipParameters{}, fmt.Errorf("constant fuel: %w", err)
	}

	rates := make([]float64, len(courses))
	for i := range rates {
		rates[i] = m.RateKgPerH
	}
	return domain.ShipParameters{FuelRates: rates}, nil
}

// CalmWater models a parametric calm-water consumption: a base hourly rate
// plus a course-dependent surcharge peaking when the leg heading opposes
// the model's preferred heading. It makes course derivation observable in
// the fitness without pretending to be a hydrodynamic model.
type CalmWater struct {
	BaseKgPerH      float64
	CoursePenalty   float64
	PreferredCourse float64
}

func NewCalmWater(baseKgPerH, coursePenalty, preferredCourse float64) (*CalmWater, error) {
	if baseKgPerH <= 0 {
		return nil, errors.New("calm water: base rate must be positive")
	}
	if coursePenalty < 0 {
		return nil, errors.New("calm water: course penalty must not be negative")
	}
	return &CalmWater{
		BaseKgPerH:      baseKgPerH,
		CoursePenalty:   coursePenalty,
		PreferredCourse: preferredCourse,
	}, nil
}

func (m *CalmWater) FuelRates(courses, startLats, startLons []float64, _ []time.Time) (domain.ShipParameters, error) {
	if err := checkLegs(courses, startLats, startLons); err != nil {
		return domain.ShipParameters{}, fmt.Errorf("calm water: %w", err)
	}

	rates := make([]float64, len(courses))
	for i, course := range courses {
		// Surcharge scales with half the angular distance to the
		// preferred course: 0 when aligned, CoursePenalty when opposed.
		off := (course - m.PreferredCourse) * math.Pi / 180
		rates[i] = m.BaseKgPerH * (1 + m.CoursePenalty*(1-math.Cos(off))/2)
	}
	return domain.ShipParameters{FuelRates: rates}, nil
}

func checkLegs(courses, startLats, startLons []float64) error {
	if len(startLats) != len(courses) || len(startLons) != len(courses) {
		return fmt.Errorf("leg slices disagree: %d courses, %d lats, %d lons",
			len(courses), len(startLats), len(startLons))
	}
	return nil
}
