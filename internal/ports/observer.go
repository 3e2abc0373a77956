package ports

import (
	"fmt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Port: a boundary for diagnostic output after population construction.
// Implementations are best-effort; callers log failures and continue.
type PopulationObserver interface {
	OnInitialPopulation(source, destination domain.Waypoint, routes []domain.Route) error
}

// Reports a failure inside a diagnostic hook. Callers log it at warning
// level and keep going; it never propagates into the optimization.
type DiagnosticError struct {
	Hook string
	Err  error
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("diagnostic hook %s: %v", e.Hook, e.Err)
}

func (e *DiagnosticError) Unwrap() error { return e.Err }
