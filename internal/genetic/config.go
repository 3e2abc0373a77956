package genetic

// Default operator tuning, matching the values the optimizer was calibrated
// with. Distances are meters, offsets degrees.
const (
	DefaultMutationProbability  = 0.7
	DefaultCrossoverProbability = 1.0
	DefaultConnectorSpacingM    = 50_000.0
	DefaultGreatCircleStepM     = 100_000.0
	DefaultMutationMaxOffsetDeg = 1.0
	DefaultInfeasiblePenalty    = 1e6
)

// Tunable parameters for a genetic voyage optimization run.
type Config struct {
	// Number of candidate routes per generation.
	PopulationSize uint
	// Number of generations to evolve.
	Generations uint
	// Chance that a selected individual is perturbed by mutation.
	MutationProbability float64
	// Chance that a selected parent pair is recombined.
	CrossoverProbability float64
	// Waypoint spacing for synthesized crossover connectors.
	ConnectorSpacingM float64
	// Discretization step for great-circle fallback routes.
	GreatCircleStepM float64
	// Largest coordinate shift a single mutation may apply.
	MutationMaxOffsetDeg float64
	// Fitness penalty added per constraint violation. Keeps infeasible
	// routes comparable while pushing selection toward feasible ones.
	InfeasiblePenalty float64
	// Evaluate individuals in parallel.
	ParallelEval bool
	// Seed for the run's random source; 0 seeds from the wall clock.
	Seed int64
}

// Return a Config with sensible defaults for a small optimization run.
func DefaultConfig() Config {
	return Config{
		PopulationSize:       20,
		Generations:          10,
		MutationProbability:  DefaultMutationProbability,
		CrossoverProbability: DefaultCrossoverProbability,
		ConnectorSpacingM:    DefaultConnectorSpacingM,
		GreatCircleStepM:     DefaultGreatCircleStepM,
		MutationMaxOffsetDeg: DefaultMutationMaxOffsetDeg,
		InfeasiblePenalty:    DefaultInfeasiblePenalty,
		ParallelEval:         true,
	}
}

// Check that the configuration can drive an optimization run.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return &ConfigurationError{Field: "PopulationSize", Reason: "need at least 2 individuals"}
	}
	if c.Generations < 1 {
		return &ConfigurationError{Field: "Generations", Reason: "need at least 1 generation"}
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return &ConfigurationError{Field: "MutationProbability", Reason: "must be within [0, 1]"}
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return &ConfigurationError{Field: "CrossoverProbability", Reason: "must be within [0, 1]"}
	}
	if c.ConnectorSpacingM <= 0 {
		return &ConfigurationError{Field: "ConnectorSpacingM", Reason: "must be positive"}
	}
	if c.GreatCircleStepM <= 0 {
		return &ConfigurationError{Field: "GreatCircleStepM", Reason: "must be positive"}
	}
	if c.MutationMaxOffsetDeg <= 0 {
		return &ConfigurationError{Field: "MutationMaxOffsetDeg", Reason: "must be positive"}
	}
	if c.InfeasiblePenalty < 0 {
		return &ConfigurationError{Field: "InfeasiblePenalty", Reason: "must not be negative"}
	}
	return nil
}
