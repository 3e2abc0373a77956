package domain

import "time"

// Per-leg sailing parameters derived from a route and a nominal boat speed.
// Slices are indexed by leg: entry i describes the transition from
// waypoint i to waypoint i+1, so each slice has route length minus one
// entries.
type VoyageParameters struct {
	Courses       []float64
	StartLats     []float64
	StartLons     []float64
	StartTimes    []time.Time
	TravelSeconds []float64
}

// Ship performance figures for the legs of a candidate route.
// FuelRates carries the hourly fuel consumption (kg/h) per leg; it is
// produced per evaluation and discarded after aggregation.
type ShipParameters struct {
	FuelRates []float64
}

// Represents a completed voyage optimization result.
// A VoyagePlan is immutable output data: the winning route together with
// the aggregate figures the optimizer reported for it.
type VoyagePlan struct {
	PlanID      int64
	Name        string
	DepartAt    time.Time
	FuelKg      float64
	Violations  int
	Generations uint
	Route       Route
	CreatedAt   time.Time
}
