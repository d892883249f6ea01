package adt

// Result represents either success or failure. A value of the type T
// represents success, a value of the type E represents failure. Exactly one
// alternative is live at any time; the inactive slot holds its zero value
// and is never observable through the accessors.
//
// A zero Result is a success holding the zero value of T. Results carrying
// borrows should be built as Result[*T, E] via Success so that the borrow is
// never nil while the success alternative is live.
type Result[T, E any] struct {
	status Status
	value  T
	err    E
}

// Success returns a result holding the given value.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		status: StatusSuccess,
		value:  value,
	}
}

// Fail returns a result holding the given error value.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		status: StatusFailure,
		err:    err,
	}
}

// FailWith returns a result holding the error value stored in the
// given failure holder.
func FailWith[T, E any](failure Failure[E]) Result[T, E] {
	return Fail[T](failure.Err())
}

// Status reports which alternative is live.
func (r Result[T, E]) Status() Status {
	return r.status
}

// IsSuccess returns true if the result holds a value.
func (r Result[T, E]) IsSuccess() bool {
	return r.status == StatusSuccess
}

// IsFailure returns true if the result holds an error value.
func (r Result[T, E]) IsFailure() bool {
	return r.status == StatusFailure
}

// Value returns the stored value.
//
// It panics with *BadAccessError if the result holds an error value. Check
// IsSuccess or use Get when the status is not already known.
func (r Result[T, E]) Value() T {
	if r.status != StatusSuccess {
		panic(&BadAccessError{Container: "result", Op: "Value", Status: r.status})
	}
	return r.value
}

// Err returns the stored error value.
//
// It panics with *BadAccessError if the result holds a value.
func (r Result[T, E]) Err() E {
	if r.status != StatusFailure {
		panic(&BadAccessError{Container: "result", Op: "Err", Status: r.status})
	}
	return r.err
}

// Get returns the stored value and true, or the zero value and false when
// the result is a failure.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.status == StatusSuccess
}

// GetErr returns the stored error value and true, or the zero value and
// false when the result is a success.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, r.status == StatusFailure
}

// ValueOr returns the stored value, or the given alternative when the
// result is a failure.
func (r Result[T, E]) ValueOr(alternative T) T {
	if r.status == StatusSuccess {
		return r.value
	}
	return alternative
}

// Mutate applies the given mutator to the stored value and returns the
// receiver. Failures are left untouched and the mutator is not invoked.
func (r *Result[T, E]) Mutate(mutator func(*T)) *Result[T, E] {
	if r.status == StatusSuccess {
		mutator(&r.value)
	}
	return r
}
