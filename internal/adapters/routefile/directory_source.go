// Package routefile reads and writes route artifacts: GeoJSON feature
// collections whose features each carry one [longitude, latitude] point,
// named route_<i>.json for the 1-indexed population sample i.
package routefile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// DirectorySource implements the RouteSource port over a directory of
// route_<i>.json artifacts.
type DirectorySource struct {
	dir string
}

// NewDirectorySource validates the artifact directory up front so a bad
// path fails before any optimization work begins.
func NewDirectorySource(dir string) (*DirectorySource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("route source: stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("route source: %q is not a directory", dir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		return nil, fmt.Errorf("route source: read %q: %w", dir, err)
	}
	return &DirectorySource{dir: dir}, nil
}

// Load reads the artifact for the 1-indexed sample. An absent file is
// reported as MissingArtifactError so callers can substitute a fallback;
// a present but unparseable file is a hard error.
func (s *DirectorySource) Load(sample int) (domain.Route, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("route_%d.json", sample))

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ports.MissingArtifactError{Path: path}
		}
		return nil, fmt.Errorf("route source: read %q: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("route source: parse %q: %w", path, err)
	}

	route := make(domain.Route, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("route source: %q feature %d: geometry is %T, want Point", path, i, f.Geometry)
		}
		// GeoJSON order is [lon, lat].
		route = append(route, domain.Waypoint{Lat: pt[1], Lon: pt[0]})
	}
	return route, nil
}

// WriteRoute stores a route as a feature collection of points in GeoJSON
// coordinate order, one feature per waypoint.
func WriteRoute(path string, route domain.Route) error {
	fc := geojson.NewFeatureCollection()
	for i, w := range route {
		f := geojson.NewFeature(orb.Point{w.Lon, w.Lat})
		f.Properties["sequence"] = i
		fc.Append(f)
	}

	raw, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("write route: marshal %q: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write route: %w", err)
	}
	return nil
}
