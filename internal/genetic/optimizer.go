package genetic

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/MaxHalford/eaopt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// Drives the evolutionary search for a minimum-fuel route.
//
// Selection, generational replacement, convergence and parallel evaluation
// belong to the eaopt harness; the Optimizer wires the routing operators
// into it and translates between Routes and harness genomes.
type Optimizer struct {
	cfg       Config
	init      Initializer
	crossover Crossover
	mutation  Mutation
	eval      Evaluator
	dedup     DuplicateEliminator
}

// Outcome of an optimization run.
type Result struct {
	Route       domain.Route
	FuelKg      float64
	Violations  int
	Generations uint
}

func NewOptimizer(cfg Config, init Initializer, crossover Crossover, mutation Mutation, eval Evaluator) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if init == nil {
		return nil, &ConfigurationError{Field: "initializer", Reason: "optimizer requires an initializer"}
	}
	if crossover == nil {
		return nil, &ConfigurationError{Field: "crossover", Reason: "optimizer requires a crossover"}
	}
	if mutation == nil {
		return nil, &ConfigurationError{Field: "mutation", Reason: "optimizer requires a mutation"}
	}
	if eval == nil {
		return nil, &ConfigurationError{Field: "evaluator", Reason: "optimizer requires an evaluator"}
	}
	return &Optimizer{cfg: cfg, init: init, crossover: crossover, mutation: mutation, eval: eval}, nil
}

// Run evolves a population and returns the best route found together with
// its unfolded evaluation figures.
func (o *Optimizer) Run(ctx context.Context) (*Result, error) {
	seed := o.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	seeds, err := o.init.Initialize(int(o.cfg.PopulationSize), rng)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	unique := o.dedup.Prune(seeds)
	if len(unique) < len(seeds) {
		log.Printf("op=optimize msg=\"pruned duplicate seed routes\" before=%d after=%d", len(seeds), len(unique))
	}

	gaCfg := eaopt.GAConfig{
		NPops:        1,
		PopSize:      o.cfg.PopulationSize,
		NGenerations: o.cfg.Generations,
		HofSize:      1,
		ParallelEval: o.cfg.ParallelEval,
		RNG:          rand.New(rand.NewSource(seed + 1)),
		Model: eaopt.ModGenerational{
			Selector: eaopt.SelTournament{NContestants: 3},
			// The mutation operator gates on its own probability, so the
			// model applies it to every selected individual; crossover
			// probability is applied here, matching the operator contract.
			MutRate:   1,
			CrossRate: o.cfg.CrossoverProbability,
		},
	}
	ga, err := gaCfg.NewGA()
	if err != nil {
		return nil, fmt.Errorf("optimize: build harness: %w", err)
	}

	ga.Callback = func(g *eaopt.GA) {
		log.Printf("op=optimize generation=%d best_fitness=%.2f", g.Generations, g.HallOfFame[0].Fitness)
	}

	// The genome factory is shared across the harness's population setup;
	// hand out the unique seed routes round-robin.
	var (
		mu   sync.Mutex
		next int
	)
	err = ga.Minimize(func(_ *rand.Rand) eaopt.Genome {
		mu.Lock()
		route := unique[next%len(unique)].Clone()
		next++
		mu.Unlock()
		return &routeGenome{
			route:     route,
			ctx:       ctx,
			eval:      o.eval,
			crossover: o.crossover,
			mutation:  o.mutation,
			penalty:   o.cfg.InfeasiblePenalty,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	best, ok := ga.HallOfFame[0].Genome.(*routeGenome)
	if !ok {
		return nil, fmt.Errorf("optimize: unexpected genome type %T in hall of fame", ga.HallOfFame[0].Genome)
	}

	// The hall-of-fame fitness folds fuel and penalty together; evaluate
	// once more to report the two figures separately.
	fuel, violations, err := o.eval.Evaluate(ctx, best.route)
	if err != nil {
		return nil, fmt.Errorf("optimize: evaluate best route: %w", err)
	}

	return &Result{
		Route:       best.route.Clone(),
		FuelKg:      fuel,
		Violations:  violations,
		Generations: ga.Generations,
	}, nil
}
