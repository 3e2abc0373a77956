package domain

// Represents a candidate voyage as an ordered waypoint sequence.
//
// A valid Route has at least two waypoints; the first is the voyage source
// and the last is the destination. Genetic operators may violate this
// temporarily while splicing, but every Route handed back to the optimizer
// must satisfy it again. Operators copy Routes rather than aliasing them,
// so no individual ever shares backing storage with another.
type Route []Waypoint

// Return the number of waypoints.
func (r Route) Len() int { return len(r) }

// Return an independent copy of the route.
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Return the first waypoint. Panics on an empty route.
func (r Route) Source() Waypoint { return r[0] }

// Return the last waypoint. Panics on an empty route.
func (r Route) Destination() Waypoint { return r[len(r)-1] }

// Return the latitudes of all waypoints in order.
func (r Route) Lats() []float64 {
	out := make([]float64, len(r))
	for i, w := range r {
		out[i] = w.Lat
	}
	return out
}

// Return the longitudes of all waypoints in order.
func (r Route) Lons() []float64 {
	out := make([]float64, len(r))
	for i, w := range r {
		out[i] = w.Lon
	}
	return out
}

// Report whether two routes are element-wise identical: same length and
// exactly equal coordinates in the same order. No tolerance is applied.
func (r Route) Equal(other Route) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}
