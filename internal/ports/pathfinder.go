package ports

import "github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"

// Contract for least-cost pathfinding over a discrete cost surface.
type Pathfinder interface {
	// Return a least-cost cell path from start to end over the given
	// surface, using 8-connectivity and hop-count (non-geometric) cost
	// accumulation. The path includes both endpoint cells.
	FindPath(cost [][]float64, start, end domain.Cell) ([]domain.Cell, error)
}
