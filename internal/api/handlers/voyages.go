package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/api/dto"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/genetic"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/services"
)

// PlanFunc runs one voyage optimization. The composition root binds it to
// the planning service with the server's configured collaborators.
type PlanFunc func(ctx context.Context, req services.PlanVoyageRequest) (*domain.VoyagePlan, error)

// VoyageHandler exposes voyage planning and retrieval endpoints.
type VoyageHandler struct {
	Repo ports.VoyageRepository
	Plan PlanFunc

	DefaultBoatSpeedMS float64
}

// Voyages dispatches the /voyages collection: GET lists stored plans,
// POST runs a new optimization.
func (h *VoyageHandler) Voyages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.plan(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Voyage serves a single stored plan by id.
func (h *VoyageHandler) Voyage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/voyages/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "voyage id must be a positive integer")
		return
	}

	plan, err := h.Repo.GetVoyagePlan(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "voyage not found")
		return
	}

	writeJSON(w, r, http.StatusOK, toVoyageResponse(plan))
}

func (h *VoyageHandler) list(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.ListVoyagePlans(r.Context())
	if err != nil {
		log.Printf("list voyages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVoyagesResponse{Voyages: make([]dto.VoyageResponse, 0, len(plans))}
	for _, p := range plans {
		res.Voyages = append(res.Voyages, toVoyageResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// plan validates the request, runs the optimizer synchronously, and
// returns the stored plan.
func (h *VoyageHandler) plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanVoyageRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if msg := validateWaypoint("source", req.Source); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	if msg := validateWaypoint("destination", req.Destination); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	if req.Source == req.Destination {
		writeError(w, r, http.StatusBadRequest, "source and destination must differ")
		return
	}

	speed := req.BoatSpeedMS
	if speed == 0 {
		speed = h.DefaultBoatSpeedMS
	}
	if speed <= 0 {
		writeError(w, r, http.StatusBadRequest, "boat_speed_ms must be positive")
		return
	}

	depart := time.Now()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	// The initializer kind and its collaborators are server configuration;
	// the composition root fills them in before the service runs.
	svcReq := services.PlanVoyageRequest{
		Name:        strings.TrimSpace(req.Name),
		Source:      domain.Waypoint{Lat: req.Source.Lat, Lon: req.Source.Lon},
		Destination: domain.Waypoint{Lat: req.Destination.Lat, Lon: req.Destination.Lon},
		DepartAt:    depart,
		BoatSpeedMS: speed,
		Config:      genetic.DefaultConfig(),
	}
	if req.PopulationSize != 0 {
		if req.PopulationSize < 2 || req.PopulationSize > 500 {
			writeError(w, r, http.StatusBadRequest, "population_size must be between 2 and 500")
			return
		}
		svcReq.Config.PopulationSize = req.PopulationSize
	}
	if req.Generations != 0 {
		if req.Generations > 1000 {
			writeError(w, r, http.StatusBadRequest, "generations must be at most 1000")
			return
		}
		svcReq.Config.Generations = req.Generations
	}

	plan, err := h.Plan(r.Context(), svcReq)
	if err != nil {
		log.Printf("plan voyage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toVoyageResponse(plan))
}

func validateWaypoint(field string, w dto.WaypointDTO) string {
	if w.Lat < -90 || w.Lat > 90 {
		return field + ".lat must be between -90 and 90"
	}
	if w.Lon < -180 || w.Lon > 180 {
		return field + ".lon must be between -180 and 180"
	}
	return ""
}

func toVoyageResponse(p *domain.VoyagePlan) dto.VoyageResponse {
	route := make([]dto.WaypointDTO, 0, p.Route.Len())
	for _, w := range p.Route {
		route = append(route, dto.WaypointDTO{Lat: w.Lat, Lon: w.Lon})
	}
	return dto.VoyageResponse{
		PlanID:      p.PlanID,
		Name:        p.Name,
		DepartAt:    p.DepartAt,
		FuelKg:      p.FuelKg,
		Violations:  p.Violations,
		Generations: p.Generations,
		Route:       route,
		CreatedAt:   p.CreatedAt,
	}
}
