package pathfind

import (
	"testing"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

func uniformCost(rows, cols int) [][]float64 {
	cost := make([][]float64, rows)
	for i := range cost {
		cost[i] = make([]float64, cols)
		for j := range cost[i] {
			cost[i][j] = 1
		}
	}
	return cost
}

func TestFindPathEndpointsAndConnectivity(t *testing.T) {
	pf := NewGridAstar()
	start := domain.Cell{Row: 0, Col: 0}
	end := domain.Cell{Row: 5, Col: 5}

	path, err := pf.FindPath(uniformCost(10, 10), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != end {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], end)
	}
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
			t.Fatalf("step %d not 8-connected: %v -> %v", i, path[i-1], path[i])
		}
	}
}

func TestFindPathUniformGridIsDiagonal(t *testing.T) {
	// With unit cost and no diagonal penalty, the optimal path is the
	// Chebyshev-distance chain of diagonal steps.
	pf := NewGridAstar()
	path, err := pf.FindPath(uniformCost(10, 10), domain.Cell{Row: 0, Col: 0}, domain.Cell{Row: 5, Col: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 6 {
		t.Errorf("got %d cells, want 6 (pure diagonal)", len(path))
	}
}

func TestFindPathAvoidsExpensiveCells(t *testing.T) {
	// A wall of expensive cells with one cheap gap: the path must use the gap.
	cost := uniformCost(5, 5)
	for r := 0; r < 5; r++ {
		cost[r][2] = 1000
	}
	cost[4][2] = 1

	pf := NewGridAstar()
	path, err := pf.FindPath(cost, domain.Cell{Row: 0, Col: 0}, domain.Cell{Row: 0, Col: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range path {
		if cost[c.Row][c.Col] >= 1000 {
			t.Errorf("path crosses expensive cell %v", c)
		}
	}
}

func TestFindPathRejectsBadInput(t *testing.T) {
	pf := NewGridAstar()

	if _, err := pf.FindPath(nil, domain.Cell{}, domain.Cell{}); err == nil {
		t.Error("expected error for empty surface")
	}
	if _, err := pf.FindPath(uniformCost(3, 3), domain.Cell{Row: 5, Col: 0}, domain.Cell{}); err == nil {
		t.Error("expected error for out-of-bounds start")
	}
	if _, err := pf.FindPath(uniformCost(3, 3), domain.Cell{}, domain.Cell{Row: 0, Col: 9}); err == nil {
		t.Error("expected error for out-of-bounds end")
	}
	if _, err := pf.FindPath([][]float64{{1, 1}, {1}}, domain.Cell{}, domain.Cell{}); err == nil {
		t.Error("expected error for ragged surface")
	}
}
