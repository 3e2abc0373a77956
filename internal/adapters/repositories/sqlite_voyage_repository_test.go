package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

func newTestRepo(t *testing.T) *SqliteVoyageRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatal(err)
	}
	return NewSqliteVoyageRepository(db)
}

func samplePlan(name string) *domain.VoyagePlan {
	return &domain.VoyagePlan{
		Name:        name,
		DepartAt:    time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC),
		FuelKg:      15000.5,
		Violations:  1,
		Generations: 25,
		Route: domain.Route{
			{Lat: 54.2, Lon: 13.1},
			{Lat: 55.0, Lon: 14.2},
			{Lat: 55.8, Lon: 15.3},
		},
	}
}

func TestSaveAndGetVoyagePlan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	plan := samplePlan("baltic-test")
	id, err := repo.SaveVoyagePlan(ctx, plan)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id <= 0 {
		t.Fatalf("got id %d, want positive", id)
	}

	got, err := repo.GetVoyagePlan(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Name != plan.Name {
		t.Errorf("name %q, want %q", got.Name, plan.Name)
	}
	if !got.DepartAt.Equal(plan.DepartAt) {
		t.Errorf("depart_at %v, want %v", got.DepartAt, plan.DepartAt)
	}
	if got.FuelKg != plan.FuelKg || got.Violations != plan.Violations || got.Generations != plan.Generations {
		t.Errorf("figures %+v, want %+v", got, plan)
	}
	if !got.Route.Equal(plan.Route) {
		t.Errorf("route %v, want %v", got.Route, plan.Route)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestGetVoyagePlanNotFound(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.GetVoyagePlan(context.Background(), 99); err == nil {
		t.Error("expected error for unknown plan id")
	}
}

func TestListVoyagePlansNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.SaveVoyagePlan(ctx, samplePlan("first"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.SaveVoyagePlan(ctx, samplePlan("second"))
	if err != nil {
		t.Fatal(err)
	}

	plans, err := repo.ListVoyagePlans(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	if plans[0].PlanID != second || plans[1].PlanID != first {
		t.Errorf("order %d,%d, want %d,%d (newest first)", plans[0].PlanID, plans[1].PlanID, second, first)
	}
}

func TestSaveVoyagePlanValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.SaveVoyagePlan(ctx, nil); err == nil {
		t.Error("expected error for nil plan")
	}

	short := samplePlan("short")
	short.Route = domain.Route{{Lat: 1, Lon: 1}}
	if _, err := repo.SaveVoyagePlan(ctx, short); err == nil {
		t.Error("expected error for single-waypoint route")
	}
}
