package adt

// StatusProvider is implemented by every Result specialization. Generic code
// holding an any can assert against it to detect result values regardless of
// their payload types.
type StatusProvider interface {
	// Status reports which alternative is live
	Status() Status
	// IsSuccess returns true if the result holds a value
	IsSuccess() bool
	// IsFailure returns true if the result holds an error value
	IsFailure() bool
}

// ValueProvider defines an interface for types that expose a success value.
type ValueProvider[T any] interface {
	// Value returns the stored value
	Value() T
	// Get returns the stored value with a presence flag
	Get() (T, bool)
}

// WithError extends ValueProvider with the failure side of a result.
type WithError[T, E any] interface {
	StatusProvider
	ValueProvider[T]
	// Err returns the stored error value
	Err() E
}

// failureMarker is implemented by every Failure specialization.
type failureMarker interface {
	failureTag()
}

// IsResultType reports whether the dynamic type of v is a Result
// specialization.
func IsResultType(v any) bool {
	_, ok := v.(StatusProvider)
	return ok
}

// IsFailureType reports whether the dynamic type of v is a Failure
// specialization.
func IsFailureType(v any) bool {
	_, ok := v.(failureMarker)
	return ok
}

// AsResult unwraps v if it is a result with exactly the given payload types.
func AsResult[T, E any](v any) (Result[T, E], bool) {
	r, ok := v.(Result[T, E])
	return r, ok
}

// AsFailure unwraps v if it is a failure holder with exactly the given
// error type.
func AsFailure[E any](v any) (Failure[E], bool) {
	f, ok := v.(Failure[E])
	return f, ok
}
