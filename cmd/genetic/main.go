package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/boat"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/constraint"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/diag"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/pathfind"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/routefile"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/voyage"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/config"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/genetic"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/services"
)

// main runs one optimization from environment configuration and prints the
// result. No persistence, no HTTP; useful for experiments and batch runs.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	source := domain.Waypoint{
		Lat: config.GetFloat("SOURCE_LAT", 54.2),
		Lon: config.GetFloat("SOURCE_LON", 11.5),
	}
	destination := domain.Waypoint{
		Lat: config.GetFloat("DEST_LAT", 55.8),
		Lon: config.GetFloat("DEST_LON", 16.5),
	}

	grid, err := domain.NewUniformGrid(
		config.GetFloat("GRID_LAT_MIN", 53),
		config.GetFloat("GRID_LAT_MAX", 57),
		config.GetFloat("GRID_LON_MIN", 10),
		config.GetFloat("GRID_LON_MAX", 18),
		config.GetInt("GRID_ROWS", 40),
		config.GetInt("GRID_COLS", 80),
	)
	if err != nil {
		log.Fatal(err)
	}

	perf, err := boat.NewConstantFuel(config.GetFloat("BOAT_FUEL_RATE_KGPH", 1200))
	if err != nil {
		log.Fatal(err)
	}

	cfg := genetic.DefaultConfig()
	cfg.PopulationSize = uint(config.GetInt("POPULATION_SIZE", 20))
	cfg.Generations = uint(config.GetInt("GENERATIONS", 10))
	cfg.Seed = int64(config.GetInt("SEED", 0))
	cfg.ParallelEval = config.GetBool("PARALLEL_EVAL", cfg.ParallelEval)

	deps := services.PlanVoyageDeps{
		Grid:       grid,
		Pathfinder: pathfind.NewGridAstar(),
		Boat:       perf,
		Voyage:     voyage.NewCalculator(),
		Checker:    constraint.NewList(),
	}
	if path := config.Get("DIAG_POPULATION_PATH", ""); path != "" {
		deps.Observer = diag.NewGeoJSONObserver(path)
	}

	kind := genetic.InitializerKind(config.Get("INITIALIZER", string(genetic.InitializerGridBased)))
	if kind == genetic.InitializerFromGeojson {
		src, err := routefile.NewDirectorySource(config.Get("ROUTE_DIR", "data/routes"))
		if err != nil {
			log.Fatal(err)
		}
		deps.Routes = src
	}

	req := services.PlanVoyageRequest{
		Name:            config.Get("RUN_NAME", "cli-run"),
		Source:          source,
		Destination:     destination,
		DepartAt:        time.Now().UTC(),
		BoatSpeedMS:     config.GetFloat("BOAT_SPEED_MS", 6),
		InitializerKind: kind,
		Config:          cfg,
	}

	plan, err := services.PlanVoyage(context.Background(), req, deps)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("op=cli_run fuel_kg=%.1f violations=%d generations=%d waypoints=%d",
		plan.FuelKg, plan.Violations, plan.Generations, plan.Route.Len())

	if out := config.Get("ROUTE_OUT", ""); out != "" {
		if err := routefile.WriteRoute(out, plan.Route); err != nil {
			log.Fatal(err)
		}
		log.Printf("op=cli_run msg=\"wrote best route\" path=%s", out)
	}
}
