package genetic

import (
	"fmt"
	"math/rand"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// Strategy for perturbing a candidate route. Implementations gate on their
// own probability, so the optimizer applies them unconditionally.
type Mutation interface {
	// Mutate returns a perturbed copy of route, or an unchanged copy when
	// the probability gate does not fire. The input is never modified.
	Mutate(route domain.Route, rng *rand.Rand) (domain.Route, error)
}

// Shifts a random contiguous interior subsegment diagonally: one scalar
// offset drawn from [-maxOffset, maxOffset] is added to both the latitude
// and the longitude of every waypoint in the segment. The endpoints are
// never touched. Routes with nothing between the endpoints pass through
// unchanged.
type SegmentShiftMutation struct {
	probability  float64
	maxOffsetDeg float64
}

func NewSegmentShiftMutation(probability, maxOffsetDeg float64) (*SegmentShiftMutation, error) {
	if probability < 0 || probability > 1 {
		return nil, &ConfigurationError{Field: "probability", Reason: "must be within [0, 1]"}
	}
	if maxOffsetDeg <= 0 {
		return nil, &ConfigurationError{Field: "maxOffsetDeg", Reason: "must be positive"}
	}
	return &SegmentShiftMutation{probability: probability, maxOffsetDeg: maxOffsetDeg}, nil
}

func (m *SegmentShiftMutation) Mutate(route domain.Route, rng *rand.Rand) (domain.Route, error) {
	out := route.Clone()
	if rng.Float64() >= m.probability {
		return out, nil
	}
	if len(out) < 3 {
		return out, nil
	}

	start, end := drawSegment(len(out), rng)
	offset := (rng.Float64()*2 - 1) * m.maxOffsetDeg

	for i := start; i <= end; i++ {
		out[i].Lat += offset
		out[i].Lon += offset
	}
	return out, nil
}

// Replaces a random interior subsegment with a freshly pathfound subpath
// over a re-jittered cost surface. The waypoints before and after the
// replaced segment stay in place; the subpath's own endpoints are the
// grid-snapped images of the segment boundaries.
type DeleteRepathMutation struct {
	probability float64
	grid        *domain.Grid
	pathfinder  ports.Pathfinder
}

func NewDeleteRepathMutation(probability float64, grid *domain.Grid, pathfinder ports.Pathfinder) (*DeleteRepathMutation, error) {
	if probability < 0 || probability > 1 {
		return nil, &ConfigurationError{Field: "probability", Reason: "must be within [0, 1]"}
	}
	if grid == nil {
		return nil, &ConfigurationError{Field: "grid", Reason: "delete-repath mutation requires a cost grid"}
	}
	if pathfinder == nil {
		return nil, &ConfigurationError{Field: "pathfinder", Reason: "delete-repath mutation requires a pathfinder"}
	}
	return &DeleteRepathMutation{probability: probability, grid: grid, pathfinder: pathfinder}, nil
}

func (m *DeleteRepathMutation) Mutate(route domain.Route, rng *rand.Rand) (domain.Route, error) {
	if rng.Float64() >= m.probability || route.Len() < 3 {
		return route.Clone(), nil
	}

	start, end := drawSegment(route.Len(), rng)

	anchors := m.grid.ToCellIndices([]domain.Waypoint{route[start], route[end]})
	cells, err := m.pathfinder.FindPath(m.grid.ShuffledCost(rng), anchors[0], anchors[1])
	if err != nil {
		return nil, fmt.Errorf("delete-repath mutation: find path: %w", err)
	}
	sub := m.grid.ToCoordinates(cells)

	out := make(domain.Route, 0, start+len(sub)+route.Len()-end-1)
	out = append(out, route[:start]...)
	out = append(out, sub...)
	out = append(out, route[end+1:]...)
	return out, nil
}

// drawSegment picks interior indices start <= end, both in [1, size-2].
func drawSegment(size int, rng *rand.Rand) (int, int) {
	hi := size - 2
	start := 1 + rng.Intn(hi)
	end := start + rng.Intn(hi-start+1)
	return start, end
}
