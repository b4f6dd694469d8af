package apval

import "time"

type ValueProvider[V any] interface {
	// Value returns the successful value
	Value() V
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrs defines an interface for types that hold either a value or
// accumulated errors
type WithErrs[E, V any] interface {
	ValueProvider[V]
	// Errs returns the accumulated errors if the outcome failed
	Errs() E
	// IsSuccess returns true if the outcome holds a value
	IsSuccess() bool
}
