package ports

import "context"

// Fuel and constraint figures for one evaluated route.
type EvalResult struct {
	FuelKg     float64
	Violations int
}

// Contract for caching route evaluations keyed by a route digest.
// Lets repeated evaluations of identical routes skip the performance model.
type EvaluationCache interface {
	// Return the cached result for key, reporting whether it was present.
	GetEval(ctx context.Context, key string) (EvalResult, bool, error)
	// Store the result for key.
	PutEval(ctx context.Context, key string, res EvalResult) error
}
