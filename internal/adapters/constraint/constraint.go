// Package constraint provides checkers for forbidden and unsafe zones,
// implementing the ConstraintChecker port. Checkers are combined with List
// so the evaluator sees a single checker per run.
package constraint

import (
	"fmt"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// List combines several checkers: a point is unsafe when any member flags
// it. An empty list flags nothing.
type List struct {
	checkers []ports.ConstraintChecker
}

func NewList(checkers ...ports.ConstraintChecker) *List {
	return &List{checkers: checkers}
}

func (l *List) Unsafe(lats, lons []float64, at *time.Time) ([]bool, error) {
	out := make([]bool, len(lats))
	for _, c := range l.checkers {
		flags, err := c.Unsafe(lats, lons, at)
		if err != nil {
			return nil, fmt.Errorf("constraint list: %w", err)
		}
		if len(flags) != len(out) {
			return nil, fmt.Errorf("constraint list: checker returned %d flags, want %d", len(flags), len(out))
		}
		for i, bad := range flags {
			if bad {
				out[i] = true
			}
		}
	}
	return out, nil
}

// Box flags every point inside a closed lat/lon rectangle. Time is ignored.
type Box struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

func (b Box) Unsafe(lats, lons []float64, _ *time.Time) ([]bool, error) {
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("box constraint: %d lats, %d lons", len(lats), len(lons))
	}
	out := make([]bool, len(lats))
	for i := range lats {
		out[i] = lats[i] >= b.LatMin && lats[i] <= b.LatMax &&
			lons[i] >= b.LonMin && lons[i] <= b.LonMax
	}
	return out, nil
}

// GridMask flags points whose nearest grid cell belongs to a configured
// unsafe set, e.g. land or exclusion cells of the cost grid.
type GridMask struct {
	grid   *domain.Grid
	unsafe map[domain.Cell]struct{}
}

func NewGridMask(grid *domain.Grid, cells []domain.Cell) (*GridMask, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid mask: grid is required")
	}
	set := make(map[domain.Cell]struct{}, len(cells))
	for _, c := range cells {
		if c.Row < 0 || c.Row >= grid.Rows() || c.Col < 0 || c.Col >= grid.Cols() {
			return nil, fmt.Errorf("grid mask: cell %v outside %dx%d grid", c, grid.Rows(), grid.Cols())
		}
		set[c] = struct{}{}
	}
	return &GridMask{grid: grid, unsafe: set}, nil
}

func (m *GridMask) Unsafe(lats, lons []float64, _ *time.Time) ([]bool, error) {
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("grid mask: %d lats, %d lons", len(lats), len(lons))
	}

	points := make([]domain.Waypoint, len(lats))
	for i := range lats {
		points[i] = domain.Waypoint{Lat: lats[i], Lon: lons[i]}
	}

	out := make([]bool, len(points))
	for i, c := range m.grid.ToCellIndices(points) {
		_, out[i] = m.unsafe[c]
	}
	return out, nil
}
