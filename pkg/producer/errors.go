package producer

import "fmt"

// ValidationError reports an argument a producer cannot work with.
// Producers never clamp or silently adjust bad input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
