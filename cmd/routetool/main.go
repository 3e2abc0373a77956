package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/repositories"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/routefile"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/config"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/geo"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/platform/db"
)

// main prepares local infrastructure for optimization runs: it initializes
// the SQLite schema, optionally the Postgres eval cache schema, and seeds
// demo route artifacts for the geojson initializer.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/voyages.db")
	if err := initSqlite(dbPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("op=routetool msg=\"sqlite schema ready\" path=%s", dbPath)

	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		if err := initPostgres(databaseURL); err != nil {
			log.Fatal(err)
		}
		log.Println("op=routetool msg=\"postgres eval cache schema ready\"")
	}

	routeDir := config.Get("ROUTE_DIR", "data/routes")
	count := config.GetInt("ROUTE_SEED_COUNT", 3)
	if err := seedRoutes(routeDir, count); err != nil {
		log.Fatal(err)
	}
	log.Printf("op=routetool msg=\"seeded demo route artifacts\" dir=%s count=%d", routeDir, count)
}

func initSqlite(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("init sqlite: create %q: %w", dir, err)
		}
	}

	sqldb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("init sqlite: open %q: %w", dbPath, err)
	}
	defer sqldb.Close()

	if err := repositories.InitSchema(sqldb); err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	return nil
}

func initPostgres(databaseURL string) error {
	pg, err := db.Open(databaseURL)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer pg.Close()

	if err := repositories.InitPostgresEvalCacheSchema(pg); err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	return nil
}

// seedRoutes writes route_<i>.json artifacts: great-circle discretizations
// between the configured endpoints at per-sample step widths, so the
// geojson initializer has a varied population to start from.
func seedRoutes(dir string, count int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("seed routes: create %q: %w", dir, err)
	}

	source := domain.Waypoint{
		Lat: config.GetFloat("SOURCE_LAT", 54.2),
		Lon: config.GetFloat("SOURCE_LON", 11.5),
	}
	destination := domain.Waypoint{
		Lat: config.GetFloat("DEST_LAT", 55.8),
		Lon: config.GetFloat("DEST_LON", 16.5),
	}

	for i := 1; i <= count; i++ {
		// Vary the step so the seeded routes differ in resolution.
		step := 100_000.0 / float64(i)
		route, err := geo.GreatCircle(source, destination, step)
		if err != nil {
			return fmt.Errorf("seed routes: sample %d: %w", i, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("route_%d.json", i))
		if err := routefile.WriteRoute(path, route); err != nil {
			return fmt.Errorf("seed routes: sample %d: %w", i, err)
		}
	}
	return nil
}
