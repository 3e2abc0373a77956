// Package voyage derives per-leg sailing parameters from a waypoint
// sequence, implementing the VoyageCalculator port.
package voyage

import (
	"fmt"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/geo"
)

// Calculator computes courses, leg start positions, start times and travel
// times assuming the boat holds one nominal speed over the whole voyage.
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

func (Calculator) Derive(lats, lons []float64, departAt time.Time, speedMS float64) (domain.VoyageParameters, error) {
	if len(lats) != len(lons) {
		return domain.VoyageParameters{}, fmt.Errorf("derive voyage parameters: %d lats, %d lons", len(lats), len(lons))
	}
	if len(lats) < 2 {
		return domain.VoyageParameters{}, fmt.Errorf("derive voyage parameters: need at least 2 waypoints, got %d", len(lats))
	}
	if speedMS <= 0 {
		return domain.VoyageParameters{}, fmt.Errorf("derive voyage parameters: speed must be positive, got %v", speedMS)
	}

	legs := len(lats) - 1
	params := domain.VoyageParameters{
		Courses:       make([]float64, legs),
		StartLats:     make([]float64, legs),
		StartLons:     make([]float64, legs),
		StartTimes:    make([]time.Time, legs),
		TravelSeconds: make([]float64, legs),
	}

	at := departAt
	for i := 0; i < legs; i++ {
		from := domain.Waypoint{Lat: lats[i], Lon: lons[i]}
		to := domain.Waypoint{Lat: lats[i+1], Lon: lons[i+1]}

		params.Courses[i] = geo.Bearing(from, to)
		params.StartLats[i] = from.Lat
		params.StartLons[i] = from.Lon
		params.StartTimes[i] = at

		seconds := geo.Distance(from, to) / speedMS
		params.TravelSeconds[i] = seconds
		at = at.Add(time.Duration(seconds * float64(time.Second)))
	}
	return params, nil
}
