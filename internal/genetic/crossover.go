package genetic

import (
	"math"
	"math/rand"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/geo"
)

// Strategy for combining two parent routes into two children.
type Crossover interface {
	// Mate produces exactly two offspring from exactly two parents. Both
	// children satisfy the Route invariants whenever the parents do.
	Mate(parent1, parent2 domain.Route, rng *rand.Rand) (domain.Route, domain.Route, error)
}

// Recombines parents by splicing them at two random cut points and bridging
// the gap with a linearly interpolated connector segment.
//
// Both children take their leading segment at cut index c1 and their
// trailing segment at cut index c2. The asymmetry (child2 does not swap the
// roles of c1 and c2) is deliberate reference behavior and is pinned by a
// regression test; do not "fix" it without revisiting that test.
type TwoPointCrossover struct {
	spacingMeters float64
}

func NewTwoPointCrossover(spacingMeters float64) (*TwoPointCrossover, error) {
	if spacingMeters <= 0 {
		return nil, &ConfigurationError{Field: "spacingMeters", Reason: "connector spacing must be positive"}
	}
	return &TwoPointCrossover{spacingMeters: spacingMeters}, nil
}

func (c *TwoPointCrossover) Mate(parent1, parent2 domain.Route, rng *rand.Rand) (domain.Route, domain.Route, error) {
	shorter := parent1.Len()
	if parent2.Len() < shorter {
		shorter = parent2.Len()
	}

	hi := shorter - 2
	if hi < 1 {
		// No interior index can be drawn; report instead of splicing garbage.
		return nil, nil, &domain.InvalidRouteError{Op: "two-point crossover", Len: shorter, Min: 3}
	}

	c1 := 1 + rng.Intn(hi) // [1, shorter-2]
	c2 := 1 + rng.Intn(hi)

	conn1 := c.connector(parent1[c1], parent2[c2])
	conn2 := c.connector(parent2[c1], parent1[c2])

	child1 := splice(parent1[:c1+1], conn1, parent2[c2:])
	child2 := splice(parent2[:c1+1], conn2, parent1[c2:])
	return child1, child2, nil
}

// connector returns the intermediate waypoints bridging a to b, linearly
// interpolated (not geodesically) at the configured spacing. Distances
// implying at most one spacing step yield an empty connector.
func (c *TwoPointCrossover) connector(a, b domain.Waypoint) []domain.Waypoint {
	n := int(math.Round(geo.Distance(a, b) / c.spacingMeters))
	if n <= 1 {
		return nil
	}

	// n spacing steps between a and b leave n-1 interior points.
	dLat := (b.Lat - a.Lat) / float64(n)
	dLon := (b.Lon - a.Lon) / float64(n)

	pts := make([]domain.Waypoint, 0, n-1)
	for i := 1; i < n; i++ {
		pts = append(pts, domain.Waypoint{
			Lat: a.Lat + float64(i)*dLat,
			Lon: a.Lon + float64(i)*dLon,
		})
	}
	return pts
}

// Recombines parents by splicing them at a randomly chosen waypoint they
// share (exact coordinate match). Parents without a common waypoint pass
// through unchanged, as copies.
type IntersectionCrossover struct{}

func NewIntersectionCrossover() *IntersectionCrossover { return &IntersectionCrossover{} }

func (*IntersectionCrossover) Mate(parent1, parent2 domain.Route, rng *rand.Rand) (domain.Route, domain.Route, error) {
	shared := commonWaypoints(parent1, parent2)
	if len(shared) == 0 {
		return parent1.Clone(), parent2.Clone(), nil
	}

	w := shared[rng.Intn(len(shared))]
	i1 := indexOf(parent1, w)
	i2 := indexOf(parent2, w)

	child1 := splice(parent1[:i1], nil, parent2[i2:])
	child2 := splice(parent2[:i2], nil, parent1[i1:])
	return child1, child2, nil
}

// commonWaypoints returns every waypoint of a that also occurs in b,
// in a's order and with a's multiplicity.
func commonWaypoints(a, b domain.Route) []domain.Waypoint {
	inB := make(map[domain.Waypoint]struct{}, len(b))
	for _, w := range b {
		inB[w] = struct{}{}
	}

	var out []domain.Waypoint
	for _, w := range a {
		if _, ok := inB[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// indexOf returns the first occurrence of w in r, or -1.
func indexOf(r domain.Route, w domain.Waypoint) int {
	for i, x := range r {
		if x == w {
			return i
		}
	}
	return -1
}

// splice concatenates the three parts into a freshly allocated route so
// children never alias parent storage.
func splice(head domain.Route, connector []domain.Waypoint, tail domain.Route) domain.Route {
	out := make(domain.Route, 0, len(head)+len(connector)+len(tail))
	out = append(out, head...)
	out = append(out, connector...)
	out = append(out, tail...)
	return out
}
