package ports

import (
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Contract for querying a ship performance model.
type PerformanceModel interface {
	// Return hourly fuel rates (kg/h) for each leg, given the leg courses,
	// start positions and start times. All slices have equal length.
	FuelRates(courses, startLats, startLons []float64, startTimes []time.Time) (domain.ShipParameters, error)
}
