package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/adapters/repositories"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

func newTestSqlite(t *testing.T) *SqliteEvalCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatal(err)
	}
	return NewSqliteEvalCache(db)
}

func TestSqliteEvalCacheRoundTrip(t *testing.T) {
	c := newTestSqlite(t)
	ctx := context.Background()

	if _, ok, err := c.GetEval(ctx, "deadbeef"); err != nil || ok {
		t.Fatalf("empty cache: got ok=%v err=%v, want miss", ok, err)
	}

	want := ports.EvalResult{FuelKg: 987.25, Violations: 3}
	if err := c.PutEval(ctx, "deadbeef", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.GetEval(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit after put")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSqliteEvalCacheOverwrites(t *testing.T) {
	c := newTestSqlite(t)
	ctx := context.Background()

	if err := c.PutEval(ctx, "k", ports.EvalResult{FuelKg: 10}); err != nil {
		t.Fatal(err)
	}
	if err := c.PutEval(ctx, "k", ports.EvalResult{FuelKg: 20, Violations: 4}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.GetEval(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.FuelKg != 20 || got.Violations != 4 {
		t.Errorf("got %+v, want the replacement entry", got)
	}
}

func TestSqliteEvalCacheNilDB(t *testing.T) {
	c := NewSqliteEvalCache(nil)
	ctx := context.Background()

	if _, _, err := c.GetEval(ctx, "k"); err == nil {
		t.Error("expected error for nil db on get")
	}
	if err := c.PutEval(ctx, "k", ports.EvalResult{}); err == nil {
		t.Error("expected error for nil db on put")
	}
}
