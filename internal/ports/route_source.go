package ports

import (
	"fmt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Port: a boundary for loading pre-computed routes from external artifacts.
type RouteSource interface {
	// Load the route for the 1-indexed sample. Returns MissingArtifactError
	// when no artifact exists for that sample; any other failure means the
	// artifact exists but could not be used.
	Load(sample int) (domain.Route, error)
}

// Reports an absent route artifact. Callers recover locally by substituting
// a fallback route; it never aborts population construction.
type MissingArtifactError struct {
	Path string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("route artifact missing: %s", e.Path)
}
