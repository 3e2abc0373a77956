package api

import (
	"net/http"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/api/handlers"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.VoyageRepository, plan handlers.PlanFunc, defaultBoatSpeedMS float64) http.Handler {
	mux := http.NewServeMux()

	voyageHandler := &handlers.VoyageHandler{
		Repo:               repo,
		Plan:               plan,
		DefaultBoatSpeedMS: defaultBoatSpeedMS,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/voyages", voyageHandler.Voyages)
	mux.HandleFunc("/voyages/", voyageHandler.Voyage)

	return loggingMiddleware(mux)
}
