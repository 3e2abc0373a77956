package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/boat"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/cache"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/constraint"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/diag"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/pathfind"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/repositories"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/routefile"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/voyage"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/api"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/config"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/genetic"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/platform/db"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, pathfinder, performance model) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/voyages.db")
	port := config.Get("PORT", "8080")
	boatSpeed := config.GetFloat("BOAT_SPEED_MS", 6)

	sqldb, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqldb.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(sqldb); err != nil {
		log.Fatal(err)
	}

	grid, err := buildGrid()
	if err != nil {
		log.Fatal(err)
	}

	deps, kind, err := buildPlanningDeps(sqldb, grid)
	if err != nil {
		log.Fatal(err)
	}
	repo := repositories.NewSqliteVoyageRepository(sqldb)
	deps.Repo = repo

	plan := func(ctx context.Context, req services.PlanVoyageRequest) (*domain.VoyagePlan, error) {
		req.InitializerKind = kind
		return services.PlanVoyage(ctx, req, deps)
	}

	router := api.NewRouter(repo, plan, boatSpeed)

	// Timeouts are tuned for synchronous optimization runs (a POST blocks
	// until the evolutionary search finishes).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqldb, nil
}

// buildGrid assembles the uniform cost grid the optimizer searches over.
func buildGrid() (*domain.Grid, error) {
	return domain.NewUniformGrid(
		config.GetFloat("GRID_LAT_MIN", 53),
		config.GetFloat("GRID_LAT_MAX", 57),
		config.GetFloat("GRID_LON_MIN", 10),
		config.GetFloat("GRID_LON_MAX", 18),
		config.GetInt("GRID_ROWS", 40),
		config.GetInt("GRID_COLS", 80),
	)
}

// buildPlanningDeps wires the planning collaborators from environment
// configuration and returns them with the configured initializer kind.
func buildPlanningDeps(sqldb *sql.DB, grid *domain.Grid) (services.PlanVoyageDeps, genetic.InitializerKind, error) {
	deps := services.PlanVoyageDeps{
		Grid:       grid,
		Pathfinder: pathfind.NewGridAstar(),
		Voyage:     voyage.NewCalculator(),
	}

	kind := genetic.InitializerKind(config.Get("INITIALIZER", string(genetic.InitializerGridBased)))
	if kind == genetic.InitializerFromGeojson {
		routeDir := config.Get("ROUTE_DIR", "data/routes")
		src, err := routefile.NewDirectorySource(routeDir)
		if err != nil {
			return deps, kind, err
		}
		deps.Routes = src
	}

	perf, err := boat.NewConstantFuel(config.GetFloat("BOAT_FUEL_RATE_KGPH", 1200))
	if err != nil {
		return deps, kind, err
	}
	deps.Boat = perf

	deps.Checker, err = buildChecker()
	if err != nil {
		return deps, kind, err
	}

	if path := config.Get("DIAG_POPULATION_PATH", ""); path != "" {
		deps.Observer = diag.NewGeoJSONObserver(path)
	}

	deps.Cache, err = buildEvalCache(sqldb)
	if err != nil {
		return deps, kind, err
	}

	return deps, kind, nil
}

// buildChecker combines the configured constraint checkers. An unsafe
// rectangle may be supplied as "latMin,latMax,lonMin,lonMax".
func buildChecker() (ports.ConstraintChecker, error) {
	var checkers []ports.ConstraintChecker

	if box := config.Get("UNSAFE_BOX", ""); box != "" {
		parts := strings.Split(box, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("buildChecker: UNSAFE_BOX %q: want latMin,latMax,lonMin,lonMax", box)
		}
		vals := make([]float64, 4)
		for i, p := range parts {
			if _, err := fmt.Sscanf(strings.TrimSpace(p), "%f", &vals[i]); err != nil {
				return nil, fmt.Errorf("buildChecker: UNSAFE_BOX %q: %w", box, err)
			}
		}
		checkers = append(checkers, constraint.Box{
			LatMin: vals[0], LatMax: vals[1],
			LonMin: vals[2], LonMax: vals[3],
		})
	}

	return constraint.NewList(checkers...), nil
}

// buildEvalCache selects the evaluation cache backend; empty means none.
func buildEvalCache(sqldb *sql.DB) (ports.EvaluationCache, error) {
	switch backend := config.Get("EVAL_CACHE", ""); backend {
	case "":
		return nil, nil
	case "sqlite":
		return cache.NewSqliteEvalCache(sqldb), nil
	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, fmt.Errorf("buildEvalCache: DATABASE_URL is required for the postgres backend")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("buildEvalCache: %w", err)
		}
		if err := repositories.InitPostgresEvalCacheSchema(pg); err != nil {
			return nil, fmt.Errorf("buildEvalCache: %w", err)
		}
		return cache.NewSQLEvalCache(pg), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.Get("REDIS_ADDR", "localhost:6379")})
		ttl := time.Duration(config.GetInt("EVAL_CACHE_TTL_HOURS", 24)) * time.Hour
		return cache.NewRedisEvalCache(client, ttl), nil
	default:
		return nil, fmt.Errorf("buildEvalCache: unknown backend %q", backend)
	}
}
