// Package pathfind adapts the go-astar search library to the Pathfinder
// port: least-cost paths over a 2-D cost surface with 8-connectivity and
// hop-count (non-geometric) cost accumulation.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/beefsack/go-astar"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// GridAstar implements the Pathfinder port over an in-memory cost surface.
// It is stateless; every FindPath call builds its own node graph, so one
// instance may serve concurrent callers.
type GridAstar struct{}

func NewGridAstar() *GridAstar { return &GridAstar{} }

// FindPath returns the least-cost 8-connected cell path from start to end.
// Stepping into a cell costs that cell's surface value regardless of
// direction, so diagonal moves carry no geometric weighting. The returned
// path runs start to end and includes both endpoint cells.
func (GridAstar) FindPath(cost [][]float64, start, end domain.Cell) ([]domain.Cell, error) {
	rows := len(cost)
	if rows == 0 || len(cost[0]) == 0 {
		return nil, errors.New("find path: empty cost surface")
	}
	cols := len(cost[0])
	for i, row := range cost {
		if len(row) != cols {
			return nil, fmt.Errorf("find path: cost row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	if !inBounds(start, rows, cols) {
		return nil, fmt.Errorf("find path: start cell %v outside %dx%d surface", start, rows, cols)
	}
	if !inBounds(end, rows, cols) {
		return nil, fmt.Errorf("find path: end cell %v outside %dx%d surface", end, rows, cols)
	}

	g := newSearchGrid(cost)
	raw, _, found := astar.Path(g.node(start.Row, start.Col), g.node(end.Row, end.Col))
	if !found {
		return nil, fmt.Errorf("find path: no path from %v to %v", start, end)
	}

	// The library yields the path goal-first; reverse into start-to-end order.
	path := make([]domain.Cell, len(raw))
	for i, p := range raw {
		n := p.(*cellNode)
		path[len(raw)-1-i] = domain.Cell{Row: n.row, Col: n.col}
	}
	return path, nil
}

func inBounds(c domain.Cell, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// searchGrid holds the per-call node graph. Nodes must be canonical (one
// pointer per cell) for the library's bookkeeping to work, so they are
// allocated up front.
type searchGrid struct {
	cost    [][]float64
	nodes   []cellNode
	cols    int
	minCost float64
}

func newSearchGrid(cost [][]float64) *searchGrid {
	rows, cols := len(cost), len(cost[0])

	min := cost[0][0]
	for _, row := range cost {
		for _, v := range row {
			if v < min {
				min = v
			}
		}
	}
	if min < 0 {
		min = 0
	}

	g := &searchGrid{cost: cost, nodes: make([]cellNode, rows*cols), cols: cols, minCost: min}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes[r*cols+c] = cellNode{grid: g, row: r, col: c}
		}
	}
	return g
}

func (g *searchGrid) node(row, col int) *cellNode {
	return &g.nodes[row*g.cols+col]
}

type cellNode struct {
	grid *searchGrid
	row  int
	col  int
}

func (n *cellNode) PathNeighbors() []astar.Pather {
	out := make([]astar.Pather, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := n.row+dr, n.col+dc
			if r < 0 || r >= len(n.grid.cost) || c < 0 || c >= n.grid.cols {
				continue
			}
			out = append(out, n.grid.node(r, c))
		}
	}
	return out
}

// PathNeighborCost charges the surface value of the cell being entered.
// Diagonal and orthogonal steps cost the same, which is what hop-count
// accumulation means.
func (n *cellNode) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*cellNode)
	return n.grid.cost[t.row][t.col]
}

// PathEstimatedCost underestimates with Chebyshev distance times the
// cheapest cell on the surface, keeping the search admissible.
func (n *cellNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*cellNode)
	dr := abs(n.row - t.row)
	dc := abs(n.col - t.col)
	if dc > dr {
		dr = dc
	}
	return float64(dr) * n.grid.minCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
