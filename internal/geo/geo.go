// Package geo wraps the geodesic math the routing operators need: great-circle
// distance, initial bearing, and geodesic discretization. All angles are
// degrees and all distances meters.
package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Return the great-circle distance in meters between two waypoints.
func Distance(a, b domain.Waypoint) float64 {
	return orbgeo.DistanceHaversine(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat})
}

// Return the initial course from a to b in degrees clockwise from north,
// normalized to [0, 360).
func Bearing(a, b domain.Waypoint) float64 {
	deg := orbgeo.Bearing(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat})
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Discretize the geodesic from src to dst into segments of stepMeters arc
// length. The returned route starts exactly at src and ends exactly at dst;
// the final segment is clipped short when the total distance is not a
// multiple of the step.
func GreatCircle(src, dst domain.Waypoint, stepMeters float64) (domain.Route, error) {
	if stepMeters <= 0 {
		return nil, fmt.Errorf("great circle: step must be positive, got %v", stepMeters)
	}

	total := Distance(src, dst)
	route := domain.Route{src}

	if total > 0 {
		a := s2.PointFromLatLng(s2.LatLngFromDegrees(src.Lat, src.Lon))
		b := s2.PointFromLatLng(s2.LatLngFromDegrees(dst.Lat, dst.Lon))
		for d := stepMeters; d < total; d += stepMeters {
			ll := s2.LatLngFromPoint(s2.Interpolate(d/total, a, b))
			route = append(route, domain.Waypoint{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()})
		}
	}

	return append(route, dst), nil
}
