package genetic

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"
)

// routeGenome adapts a candidate Route to the evolutionary harness's genome
// contract. The harness offers no way to thread a context through genome
// calls, so each genome carries the run context it was created under.
type routeGenome struct {
	route domain.Route

	ctx       context.Context
	eval      Evaluator
	crossover Crossover
	mutation  Mutation
	penalty   float64
}

// Evaluate folds the evaluation figures into the single fitness value the
// harness minimizes: fuel plus a fixed penalty per constraint violation.
// A route too malformed to evaluate gets infinite fitness instead of
// aborting the whole run, which keeps it out of selection.
func (g *routeGenome) Evaluate() (float64, error) {
	fuel, violations, err := g.eval.Evaluate(g.ctx, g.route)
	if err != nil {
		var invalid *domain.InvalidRouteError
		if errors.As(err, &invalid) {
			log.Printf("op=evaluate msg=\"discarding malformed individual\" err=%v", err)
			return math.Inf(1), nil
		}
		return 0, err
	}
	return fuel + g.penalty*float64(violations), nil
}

// Mutate perturbs the genome's route. Operator failures leave the route
// unchanged; a failed perturbation must not corrupt the individual.
func (g *routeGenome) Mutate(rng *rand.Rand) {
	mutated, err := g.mutation.Mutate(g.route, rng)
	if err != nil {
		log.Printf("op=mutate msg=\"keeping unmutated route\" err=%v", err)
		return
	}
	g.route = mutated
}

// Crossover recombines this genome with other in place, as the harness
// expects. Parent pairs the operator rejects pass through unchanged.
func (g *routeGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o := other.(*routeGenome)
	child1, child2, err := g.crossover.Mate(g.route, o.route, rng)
	if err != nil {
		log.Printf("op=crossover msg=\"keeping parent routes\" err=%v", err)
		return
	}
	g.route = child1
	o.route = child2
}

func (g *routeGenome) Clone() eaopt.Genome {
	return &routeGenome{
		route:     g.route.Clone(),
		ctx:       g.ctx,
		eval:      g.eval,
		crossover: g.crossover,
		mutation:  g.mutation,
		penalty:   g.penalty,
	}
}
