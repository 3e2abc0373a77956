package domain

// Immutable geographic waypoint (latitude, longitude) in degrees.
type Waypoint struct {
	Lat float64
	Lon float64
}

// Return the waypoint as [lon, lat] for GeoJSON compatibility.
func (w Waypoint) LonLat() []float64 { return []float64{w.Lon, w.Lat} }
