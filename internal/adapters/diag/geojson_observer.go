// Package diag provides diagnostic observers for optimization runs. They
// are best-effort: callers log their failures and continue.
package diag

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// GeoJSONObserver writes the initial population to a GeoJSON file so a run
// can be inspected on a map afterwards: one LineString feature per route
// plus point features for source and destination.
type GeoJSONObserver struct {
	Path string
}

func NewGeoJSONObserver(path string) *GeoJSONObserver {
	return &GeoJSONObserver{Path: path}
}

func (o *GeoJSONObserver) OnInitialPopulation(source, destination domain.Waypoint, routes []domain.Route) error {
	fc := geojson.NewFeatureCollection()

	src := geojson.NewFeature(orb.Point{source.Lon, source.Lat})
	src.Properties["role"] = "source"
	fc.Append(src)

	dst := geojson.NewFeature(orb.Point{destination.Lon, destination.Lat})
	dst.Properties["role"] = "destination"
	fc.Append(dst)

	for i, route := range routes {
		line := make(orb.LineString, 0, len(route))
		for _, w := range route {
			line = append(line, orb.Point{w.Lon, w.Lat})
		}
		f := geojson.NewFeature(line)
		f.Properties["route"] = i
		f.Properties["waypoints"] = len(route)
		fc.Append(f)
	}

	raw, err := fc.MarshalJSON()
	if err != nil {
		return &ports.DiagnosticError{Hook: "geojson_population", Err: fmt.Errorf("marshal: %w", err)}
	}
	if err := os.WriteFile(o.Path, raw, 0o644); err != nil {
		return &ports.DiagnosticError{Hook: "geojson_population", Err: err}
	}
	return nil
}
