package genetic

import "github.com/sakthisrisanth98/WeatherRoutingTool/internal/domain"

// Decides whether two individuals represent the same candidate route.
// Duplicates are exact: same length and identical coordinates in the same
// order. No tolerance is applied, so near-identical routes survive pruning.
type DuplicateEliminator struct{}

// Report whether a and b are duplicates.
func (DuplicateEliminator) IsDuplicate(a, b domain.Route) bool {
	return a.Equal(b)
}

// Return routes with exact duplicates removed, keeping the first occurrence
// of each and preserving order.
func (d DuplicateEliminator) Prune(routes []domain.Route) []domain.Route {
	kept := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		dup := false
		for _, k := range kept {
			if d.IsDuplicate(r, k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, r)
		}
	}
	return kept
}
