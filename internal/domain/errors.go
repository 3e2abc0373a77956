package domain

import "fmt"

// Reports a route too short for an operator's index arithmetic to be
// well-defined. Operators return it instead of producing corrupt geometry,
// so the optimizer can discard the affected individual and keep running.
type InvalidRouteError struct {
	Op  string
	Len int
	Min int
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("%s: route has %d waypoints, need at least %d", e.Op, e.Len, e.Min)
}
