package genetic

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/geo"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Strategy for producing the initial set of candidate routes.
type Initializer interface {
	// Initialize returns exactly count routes, each starting at the
	// configured source and ending at the configured destination.
	Initialize(count int, rng *rand.Rand) ([]domain.Route, error)
}

// Seeds the population by pathfinding across randomized cost surfaces.
//
// Each sample shuffles the base grid's cost values and runs the external
// pathfinder over the result, so a deterministic pathfinder still yields a
// diverse population. Cell-path output is mapped back to coordinates and
// the endpoints snapped to the exact source and destination.
type GridBasedInitializer struct {
	source      domain.Waypoint
	destination domain.Waypoint
	grid        *domain.Grid
	pathfinder  ports.Pathfinder
	observer    ports.PopulationObserver
}

func NewGridBasedInitializer(
	source, destination domain.Waypoint,
	grid *domain.Grid,
	pathfinder ports.Pathfinder,
	observer ports.PopulationObserver,
) (*GridBasedInitializer, error) {
	if grid == nil {
		return nil, &ConfigurationError{Field: "grid", Reason: "grid-based initializer requires a cost grid"}
	}
	if pathfinder == nil {
		return nil, &ConfigurationError{Field: "pathfinder", Reason: "grid-based initializer requires a pathfinder"}
	}
	return &GridBasedInitializer{
		source:      source,
		destination: destination,
		grid:        grid,
		pathfinder:  pathfinder,
		observer:    observer,
	}, nil
}

func (in *GridBasedInitializer) Initialize(count int, rng *rand.Rand) ([]domain.Route, error) {
	endpoints := in.grid.ToCellIndices([]domain.Waypoint{in.source, in.destination})

	routes := make([]domain.Route, 0, count)
	for i := 1; i <= count; i++ {
		surface := in.grid.ShuffledCost(rng)

		cells, err := in.pathfinder.FindPath(surface, endpoints[0], endpoints[1])
		if err != nil {
			return nil, fmt.Errorf("initialize population: sample %d: find path: %w", i, err)
		}

		route := in.grid.ToCoordinates(cells)
		// Cell centers sit slightly off the requested coordinates; restore
		// the exact endpoints the contract promises.
		if len(route) < 2 {
			route = domain.Route{in.source, in.destination}
		} else {
			route[0] = in.source
			route[len(route)-1] = in.destination
		}
		routes = append(routes, route)
	}

	notifyObserver(in.observer, in.source, in.destination, routes)
	return routes, nil
}

// Seeds the population from pre-computed route artifacts, one per sample,
// substituting a great-circle route for any sample whose artifact is absent.
type FromGeojsonInitializer struct {
	source      domain.Waypoint
	destination domain.Waypoint
	routes      ports.RouteSource
	stepMeters  float64
	observer    ports.PopulationObserver
}

func NewFromGeojsonInitializer(
	source, destination domain.Waypoint,
	routes ports.RouteSource,
	stepMeters float64,
	observer ports.PopulationObserver,
) (*FromGeojsonInitializer, error) {
	if routes == nil {
		return nil, &ConfigurationError{Field: "routes", Reason: "geojson initializer requires a route source"}
	}
	if stepMeters <= 0 {
		return nil, &ConfigurationError{Field: "stepMeters", Reason: "great-circle step must be positive"}
	}
	return &FromGeojsonInitializer{
		source:      source,
		destination: destination,
		routes:      routes,
		stepMeters:  stepMeters,
		observer:    observer,
	}, nil
}

func (in *FromGeojsonInitializer) Initialize(count int, _ *rand.Rand) ([]domain.Route, error) {
	routes := make([]domain.Route, 0, count)
	for i := 1; i <= count; i++ {
		route, err := in.routes.Load(i)
		if err != nil {
			var missing *ports.MissingArtifactError
			if !errors.As(err, &missing) {
				return nil, fmt.Errorf("initialize population: sample %d: %w", i, err)
			}
			// An absent artifact is expected; fall back to the geodesic.
			log.Printf("op=initialize_population level=warn sample=%d msg=\"substituting great-circle route\" err=%v", i, err)
			route, err = geo.GreatCircle(in.source, in.destination, in.stepMeters)
			if err != nil {
				return nil, fmt.Errorf("initialize population: sample %d: great-circle fallback: %w", i, err)
			}
		}
		if len(route) < 2 {
			return nil, fmt.Errorf("initialize population: sample %d: artifact route has %d waypoints, need at least 2", i, len(route))
		}
		routes = append(routes, route)
	}

	notifyObserver(in.observer, in.source, in.destination, routes)
	return routes, nil
}

// Run the diagnostic hook over a finished population. The population is
// already valid at this point, so hook failures are logged and swallowed.
func notifyObserver(obs ports.PopulationObserver, src, dst domain.Waypoint, routes []domain.Route) {
	if obs == nil {
		return
	}
	if err := obs.OnInitialPopulation(src, dst, routes); err != nil {
		log.Printf("op=initialize_population level=warn hook=population_observer err=%v", err)
	}
}
