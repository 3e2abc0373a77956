package routefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

func TestNewDirectorySourceValidatesPath(t *testing.T) {
	if _, err := NewDirectorySource(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "not_a_dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewDirectorySource(file); err == nil {
		t.Error("expected error for non-directory path")
	}

	if _, err := NewDirectorySource(t.TempDir()); err != nil {
		t.Errorf("unexpected error for valid directory: %v", err)
	}
}

func TestLoadRoundTripsWrittenRoute(t *testing.T) {
	dir := t.TempDir()
	route := domain.Route{
		{Lat: 54.2, Lon: 13.1},
		{Lat: 54.9, Lon: 13.8},
		{Lat: 55.3, Lon: 14.5},
	}
	if err := WriteRoute(filepath.Join(dir, "route_1.json"), route); err != nil {
		t.Fatal(err)
	}

	src, err := NewDirectorySource(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := src.Load(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(route) {
		t.Errorf("loaded route %v, want %v", got, route)
	}
}

func TestLoadReportsMissingArtifact(t *testing.T) {
	src, err := NewDirectorySource(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = src.Load(7)
	var missing *ports.MissingArtifactError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingArtifactError", err)
	}
}

func TestLoadRejectsMalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "route_1.json"), []byte("not geojson"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := NewDirectorySource(dir)
	if err != nil {
		t.Fatal(err)
	}

	_, err = src.Load(1)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var missing *ports.MissingArtifactError
	if errors.As(err, &missing) {
		t.Error("malformed artifact must not be reported as missing")
	}
}

func TestLoadReadsLonLatOrder(t *testing.T) {
	dir := t.TempDir()
	raw := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[13.1,54.2]}},
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[14.5,55.3]}}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "route_1.json"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := NewDirectorySource(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := src.Load(1)
	if err != nil {
		t.Fatal(err)
	}

	want := domain.Route{{Lat: 54.2, Lon: 13.1}, {Lat: 55.3, Lon: 14.5}}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v (coordinates must be reprojected from [lon, lat])", got, want)
	}
}
