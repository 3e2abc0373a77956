package genetic

import (
	"fmt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Enumerates the population initializer strategies the factory can build.
type InitializerKind string

const (
	InitializerGridBased   InitializerKind = "grid_based"
	InitializerFromGeojson InitializerKind = "from_geojson"
)

// Enumerates the mutation strategies the factory can build.
type MutationKind string

const (
	MutationGridBased    MutationKind = "grid_based"
	MutationDeleteRepath MutationKind = "delete_repath"
)

// Enumerates the crossover strategies the factory can build.
type CrossoverKind string

const (
	CrossoverTwoPoint     CrossoverKind = "two_point"
	CrossoverIntersection CrossoverKind = "intersection"
)

// Collaborators the initializer factory can draw from. Only the fields the
// chosen kind needs must be set; a zero StepMeters selects the default.
type InitializerOptions struct {
	Grid       *domain.Grid
	Pathfinder ports.Pathfinder
	Routes     ports.RouteSource
	StepMeters float64
	Observer   ports.PopulationObserver
}

// Build the initializer for the given kind. Unknown kinds and missing
// required collaborators fail with ConfigurationError.
func NewInitializer(kind InitializerKind, source, destination domain.Waypoint, opts InitializerOptions) (Initializer, error) {
	switch kind {
	case InitializerGridBased:
		return NewGridBasedInitializer(source, destination, opts.Grid, opts.Pathfinder, opts.Observer)
	case InitializerFromGeojson:
		step := opts.StepMeters
		if step == 0 {
			step = DefaultGreatCircleStepM
		}
		return NewFromGeojsonInitializer(source, destination, opts.Routes, step, opts.Observer)
	default:
		return nil, &ConfigurationError{Field: "initializer", Reason: fmt.Sprintf("unknown kind %q", kind)}
	}
}

// Collaborators the mutation factory can draw from. A zero MaxOffsetDeg
// selects the default; Grid and Pathfinder are only needed for the
// delete-repath kind.
type MutationOptions struct {
	Probability  float64
	MaxOffsetDeg float64
	Grid         *domain.Grid
	Pathfinder   ports.Pathfinder
}

// Build the mutation for the given kind. Unknown kinds and missing
// required collaborators fail with ConfigurationError.
func NewMutation(kind MutationKind, opts MutationOptions) (Mutation, error) {
	switch kind {
	case MutationGridBased:
		maxOffset := opts.MaxOffsetDeg
		if maxOffset == 0 {
			maxOffset = DefaultMutationMaxOffsetDeg
		}
		return NewSegmentShiftMutation(opts.Probability, maxOffset)
	case MutationDeleteRepath:
		return NewDeleteRepathMutation(opts.Probability, opts.Grid, opts.Pathfinder)
	default:
		return nil, &ConfigurationError{Field: "mutation", Reason: fmt.Sprintf("unknown kind %q", kind)}
	}
}

// Build the crossover for the given kind. A zero spacing selects the
// default; unknown kinds fail with ConfigurationError.
func NewCrossover(kind CrossoverKind, spacingMeters float64) (Crossover, error) {
	switch kind {
	case CrossoverTwoPoint:
		if spacingMeters == 0 {
			spacingMeters = DefaultConnectorSpacingM
		}
		return NewTwoPointCrossover(spacingMeters)
	case CrossoverIntersection:
		return NewIntersectionCrossover(), nil
	default:
		return nil, &ConfigurationError{Field: "crossover", Reason: fmt.Sprintf("unknown kind %q", kind)}
	}
}
