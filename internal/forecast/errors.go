package forecast

import "fmt"

// ValidationError reports a request that failed the simulator's own bounds
// checks. Upstream transports normally reject these before the core runs;
// direct callers get a typed failure instead of silent clamping.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ResourceLimitError reports a request whose trials × opportunities product
// exceeds the configured draw budget. Kept distinct from validation so a
// caller knows to shrink the request rather than retry it unchanged.
type ResourceLimitError struct {
	Trials        int
	Opportunities int
	MaxDraws      int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("simulation too large: %d trials x %d opportunities exceeds the budget of %d draws",
		e.Trials, e.Opportunities, e.MaxDraws)
}
