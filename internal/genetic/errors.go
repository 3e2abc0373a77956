package genetic

import "fmt"

// Reports a bad or missing argument while assembling optimizer components.
// Configuration failures surface to the caller before any optimization work
// begins; they are never recovered from.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}
