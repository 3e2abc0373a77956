package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// SQLite-backed implementation of the VoyageRepository port. Routes are
// stored as a JSON array of [lon, lat] pairs, matching the artifact
// coordinate order.
type SqliteVoyageRepository struct{ DB *sql.DB }

func NewSqliteVoyageRepository(db *sql.DB) *SqliteVoyageRepository {
	return &SqliteVoyageRepository{DB: db}
}

// Store a finished plan and return its assigned identifier.
func (s *SqliteVoyageRepository) SaveVoyagePlan(ctx context.Context, plan *domain.VoyagePlan) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("voyage repository: DB is nil")
	}
	if plan == nil {
		return 0, errors.New("save voyage plan: plan is nil")
	}
	if plan.Route.Len() < 2 {
		return 0, fmt.Errorf("save voyage plan: route has %d waypoints, need at least 2", plan.Route.Len())
	}

	routeJSON, err := marshalRoute(plan.Route)
	if err != nil {
		return 0, fmt.Errorf("save voyage plan: %w", err)
	}

	query := `
	INSERT INTO voyage_plans (
		name,
		depart_at,
		fuel_kg,
		violations,
		generations,
		route_json
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		plan.Name,
		plan.DepartAt.UTC().Format(time.RFC3339Nano),
		plan.FuelKg,
		plan.Violations,
		plan.Generations,
		routeJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("save voyage plan: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save voyage plan: last insert id: %w", err)
	}
	return id, nil
}

// Retrieve a single plan by identifier.
func (s *SqliteVoyageRepository) GetVoyagePlan(ctx context.Context, id int64) (*domain.VoyagePlan, error) {
	if s.DB == nil {
		return nil, errors.New("voyage repository: DB is nil")
	}

	query := `
	SELECT
		plan_id,
		name,
		depart_at,
		fuel_kg,
		violations,
		generations,
		route_json,
		created_at
	FROM voyage_plans
	WHERE plan_id = ?;
	`
	plan, err := scanVoyagePlan(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get voyage plan: plan %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get voyage plan: %w", err)
	}
	return plan, nil
}

// Retrieve all stored plans, newest first.
func (s *SqliteVoyageRepository) ListVoyagePlans(ctx context.Context) ([]*domain.VoyagePlan, error) {
	if s.DB == nil {
		return nil, errors.New("voyage repository: DB is nil")
	}

	query := `
	SELECT
		plan_id,
		name,
		depart_at,
		fuel_kg,
		violations,
		generations,
		route_json,
		created_at
	FROM voyage_plans
	ORDER BY created_at DESC, plan_id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list voyage plans: query voyage_plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.VoyagePlan, 0, 16)
	for rows.Next() {
		plan, err := scanVoyagePlan(rows)
		if err != nil {
			return nil, fmt.Errorf("list voyage plans: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list voyage plans: row iteration: %w", err)
	}

	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoyagePlan(row rowScanner) (*domain.VoyagePlan, error) {
	var (
		plan                domain.VoyagePlan
		departAt, createdAt string
		routeJSON           string
	)
	err := row.Scan(
		&plan.PlanID,
		&plan.Name,
		&departAt,
		&plan.FuelKg,
		&plan.Violations,
		&plan.Generations,
		&routeJSON,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if plan.DepartAt, err = time.Parse(time.RFC3339Nano, departAt); err != nil {
		return nil, fmt.Errorf("parse depart_at %q: %w", departAt, err)
	}
	if plan.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if plan.Route, err = unmarshalRoute(routeJSON); err != nil {
		return nil, err
	}
	return &plan, nil
}

func marshalRoute(route domain.Route) (string, error) {
	pairs := make([][2]float64, route.Len())
	for i, w := range route {
		pairs[i] = [2]float64{w.Lon, w.Lat}
	}
	raw, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("marshal route: %w", err)
	}
	return string(raw), nil
}

func unmarshalRoute(raw string) (domain.Route, error) {
	var pairs [][2]float64
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("parse route json: %w", err)
	}
	route := make(domain.Route, len(pairs))
	for i, p := range pairs {
		route[i] = domain.Waypoint{Lat: p[1], Lon: p[0]}
	}
	return route, nil
}
