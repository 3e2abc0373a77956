package ports

import "time"

// Contract for checking waypoints against forbidden or unsafe zones.
type ConstraintChecker interface {
	// Report per point whether it lies in an unsafe zone. Points are
	// passed batched to keep one call per route evaluation. A nil time
	// requests time-independent evaluation.
	Unsafe(lats, lons []float64, at *time.Time) ([]bool, error)
}
