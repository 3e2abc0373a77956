package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/genetic"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/platform/obs"
	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/ports"
)

// PlanVoyageRequest describes one optimization job.
type PlanVoyageRequest struct {
	Name            string
	Source          domain.Waypoint
	Destination     domain.Waypoint
	DepartAt        time.Time
	BoatSpeedMS     float64
	InitializerKind genetic.InitializerKind
	Config          genetic.Config
}

// PlanVoyageDeps carries the collaborators a planning run draws on. Grid,
// Pathfinder and Routes are only needed by the matching initializer kind;
// Cache, Observer and Repo are optional.
type PlanVoyageDeps struct {
	Grid       *domain.Grid
	Pathfinder ports.Pathfinder
	Routes     ports.RouteSource
	Boat       ports.PerformanceModel
	Voyage     ports.VoyageCalculator
	Checker    ports.ConstraintChecker
	Cache      ports.EvaluationCache
	Observer   ports.PopulationObserver
	Repo       ports.VoyageRepository
}

// Plan a voyage by evolving candidate routes toward minimum fuel use.
//
// The function assembles the genetic operators for the request, runs the
// optimizer, and returns the winning route with its evaluation figures.
// When a repository is configured the plan is persisted before returning.
func PlanVoyage(ctx context.Context, req PlanVoyageRequest, deps PlanVoyageDeps) (_ *domain.VoyagePlan, err error) {
	defer obs.Time(ctx, "services.PlanVoyage")(&err)

	if req.BoatSpeedMS <= 0 {
		return nil, errors.New("plan voyage: boat speed must be positive")
	}
	if req.Source == req.Destination {
		return nil, errors.New("plan voyage: source and destination must differ")
	}

	init, err := genetic.NewInitializer(req.InitializerKind, req.Source, req.Destination, genetic.InitializerOptions{
		Grid:       deps.Grid,
		Pathfinder: deps.Pathfinder,
		Routes:     deps.Routes,
		StepMeters: req.Config.GreatCircleStepM,
		Observer:   deps.Observer,
	})
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	crossover, err := genetic.NewCrossover(genetic.CrossoverTwoPoint, req.Config.ConnectorSpacingM)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	mutation, err := genetic.NewMutation(genetic.MutationGridBased, genetic.MutationOptions{
		Probability:  req.Config.MutationProbability,
		MaxOffsetDeg: req.Config.MutationMaxOffsetDeg,
	})
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	problem, err := genetic.NewProblem(deps.Voyage, deps.Boat, deps.Checker, req.DepartAt, req.BoatSpeedMS)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	var eval genetic.Evaluator = problem
	if deps.Cache != nil {
		if eval, err = genetic.NewCachedEvaluator(problem, deps.Cache); err != nil {
			return nil, fmt.Errorf("plan voyage: %w", err)
		}
	}

	optimizer, err := genetic.NewOptimizer(req.Config, init, crossover, mutation, eval)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	result, err := optimizer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	plan := &domain.VoyagePlan{
		Name:        req.Name,
		DepartAt:    req.DepartAt,
		FuelKg:      result.FuelKg,
		Violations:  result.Violations,
		Generations: result.Generations,
		Route:       result.Route,
	}

	if deps.Repo != nil {
		id, err := deps.Repo.SaveVoyagePlan(ctx, plan)
		if err != nil {
			return nil, fmt.Errorf("plan voyage: persist plan: %w", err)
		}
		plan.PlanID = id
		log.Printf("op=plan_voyage plan_id=%d fuel_kg=%.1f violations=%d", id, plan.FuelKg, plan.Violations)
	}

	return plan, nil
}
