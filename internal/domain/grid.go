package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Discrete (row, column) address into a Grid.
type Cell struct {
	Row int
	Col int
}

// Represents an immutable traversal-cost surface over a lat/lon raster.
//
// A Grid owns the mapping between geographic coordinates and cell indices.
// The base cost values are never mutated after construction; randomized
// variants for pathfinding are produced per call by ShuffledCost, so the
// Grid is safe for concurrent read access by many operators.
type Grid struct {
	lats []float64
	lons []float64
	cost [][]float64
}

// Build a Grid from cell-center axes and a base cost surface.
// Axes must be strictly increasing and cost must be len(lats) rows of
// len(lons) values.
func NewGrid(lats, lons []float64, cost [][]float64) (*Grid, error) {
	if len(lats) == 0 || len(lons) == 0 {
		return nil, errors.New("new grid: axes must be non-empty")
	}
	if err := checkAscending("lats", lats); err != nil {
		return nil, err
	}
	if err := checkAscending("lons", lons); err != nil {
		return nil, err
	}
	if len(cost) != len(lats) {
		return nil, fmt.Errorf("new grid: cost has %d rows, want %d", len(cost), len(lats))
	}
	for i, row := range cost {
		if len(row) != len(lons) {
			return nil, fmt.Errorf("new grid: cost row %d has %d columns, want %d", i, len(row), len(lons))
		}
	}
	return &Grid{lats: lats, lons: lons, cost: cost}, nil
}

// Build a Grid spanning [latMin, latMax] x [lonMin, lonMax] with the given
// number of rows and columns and a uniform unit cost everywhere.
func NewUniformGrid(latMin, latMax, lonMin, lonMax float64, rows, cols int) (*Grid, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("new uniform grid: need at least 2x2 cells, got %dx%d", rows, cols)
	}
	if latMax <= latMin || lonMax <= lonMin {
		return nil, errors.New("new uniform grid: bounds must span a non-empty area")
	}

	lats := make([]float64, rows)
	for i := range lats {
		lats[i] = latMin + float64(i)*(latMax-latMin)/float64(rows-1)
	}
	lons := make([]float64, cols)
	for j := range lons {
		lons[j] = lonMin + float64(j)*(lonMax-lonMin)/float64(cols-1)
	}

	cost := make([][]float64, rows)
	for i := range cost {
		cost[i] = make([]float64, cols)
		for j := range cost[i] {
			cost[i][j] = 1
		}
	}
	return &Grid{lats: lats, lons: lons, cost: cost}, nil
}

func checkAscending(name string, axis []float64) error {
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("new grid: %s axis must be strictly increasing (index %d)", name, i)
		}
	}
	return nil
}

// Return the number of latitude rows.
func (g *Grid) Rows() int { return len(g.lats) }

// Return the number of longitude columns.
func (g *Grid) Cols() int { return len(g.lons) }

// Map geographic points to their nearest grid cells.
// Points outside the grid bounds snap to the nearest edge cell.
func (g *Grid) ToCellIndices(points []Waypoint) []Cell {
	out := make([]Cell, len(points))
	for i, p := range points {
		out[i] = Cell{
			Row: nearestIndex(g.lats, p.Lat),
			Col: nearestIndex(g.lons, p.Lon),
		}
	}
	return out
}

// Map grid cells back to the geographic coordinates of their centers.
func (g *Grid) ToCoordinates(cells []Cell) Route {
	out := make(Route, len(cells))
	for i, c := range cells {
		out[i] = Waypoint{Lat: g.lats[c.Row], Lon: g.lons[c.Col]}
	}
	return out
}

// Produce a randomized cost surface for one pathfinder invocation.
//
// The result holds exactly the base grid's cost values rearranged by a
// random permutation, so the cost distribution is preserved while cell
// ordering changes. Each call allocates a fresh surface; the base grid is
// untouched, which keeps concurrent initializer calls independent.
func (g *Grid) ShuffledCost(rng *rand.Rand) [][]float64 {
	rows, cols := g.Rows(), g.Cols()

	flat := make([]float64, 0, rows*cols)
	for _, row := range g.cost {
		flat = append(flat, row...)
	}
	perm := rng.Perm(len(flat))

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = flat[perm[i*cols+j]]
		}
	}
	return out
}

// Return the index of the axis value closest to v.
func nearestIndex(axis []float64, v float64) int {
	i := sort.SearchFloat64s(axis, v)
	if i == 0 {
		return 0
	}
	if i == len(axis) {
		return len(axis) - 1
	}
	if v-axis[i-1] <= axis[i]-v {
		return i - 1
	}
	return i
}
