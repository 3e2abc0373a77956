package dto

import "time"

type WaypointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PlanVoyageRequest struct {
	Name           string      `json:"name"`
	Source         WaypointDTO `json:"source"`
	Destination    WaypointDTO `json:"destination"`
	DepartAt       *time.Time  `json:"depart_at"`
	BoatSpeedMS    float64     `json:"boat_speed_ms"`
	PopulationSize uint        `json:"population_size"`
	Generations    uint        `json:"generations"`
}

type VoyageResponse struct {
	PlanID      int64         `json:"plan_id"`
	Name        string        `json:"name"`
	DepartAt    time.Time     `json:"depart_at"`
	FuelKg      float64       `json:"fuel_kg"`
	Violations  int           `json:"violations"`
	Generations uint          `json:"generations"`
	Route       []WaypointDTO `json:"route"`
	CreatedAt   time.Time     `json:"created_at"`
}

type ListVoyagesResponse struct {
	Voyages []VoyageResponse `json:"voyages"`
}
