package ports

import (
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Contract for deriving per-leg voyage parameters from a waypoint sequence.
type VoyageCalculator interface {
	// Derive course, start position, start time and travel time for each
	// waypoint transition, assuming the boat holds speedMS (m/s) over the
	// whole voyage starting at departAt.
	Derive(lats, lons []float64, departAt time.Time, speedMS float64) (domain.VoyageParameters, error)
}
