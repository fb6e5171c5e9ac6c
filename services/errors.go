package services

import "fmt"

// ValidationError rejects a whole import batch before any persistence or
// compute effect. Row is 1-based over the data rows.
type ValidationError struct {
	Row   int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ComputationError means no point set could be produced. Unlike persistence
// failures it always propagates to the caller.
type ComputationError struct {
	Name string
	Msg  string
}

func (e *ComputationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("bcg compute failed for %q: %s", e.Name, e.Msg)
	}
	return "bcg compute failed: " + e.Msg
}
