package ports

import (
	"context"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Port: a boundary for persisting completed voyage plans.
type VoyageRepository interface {
	// Store a finished plan and return its assigned identifier.
	SaveVoyagePlan(ctx context.Context, plan *domain.VoyagePlan) (int64, error)
	// Retrieve a single plan by identifier.
	GetVoyagePlan(ctx context.Context, id int64) (*domain.VoyagePlan, error)
	// Retrieve all stored plans, newest first.
	ListVoyagePlans(ctx context.Context) ([]*domain.VoyagePlan, error)
}
