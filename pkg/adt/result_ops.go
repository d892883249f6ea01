package adt

// Map applies the given mapping to the result value.
//
// If the result is success, it returns a new result holding the mapped
// value, otherwise a new result carrying the original error value.
func Map[In, Out, E any](r Result[In, E], mapping func(In) Out) Result[Out, E] {
	if r.IsSuccess() {
		return Success[Out, E](mapping(r.Value()))
	}
	return Fail[Out](r.Err())
}

// Bind applies the given binder to the result value.
//
// If the result is success, it returns the binder's result directly,
// otherwise a new result carrying the original error value. The binder is
// never invoked on failures.
func Bind[In, Out, E any](r Result[In, E], binder func(In) Result[Out, E]) Result[Out, E] {
	if r.IsSuccess() {
		return binder(r.Value())
	}
	return Fail[Out](r.Err())
}

// Apply applies the function held by fn to the value held by r.
//
// Errors short-circuit with r checked first: if r is a failure its error is
// propagated even when fn is also a failure; only then is fn's state
// examined.
func Apply[In, Out, E any](r Result[In, E], fn Result[func(In) Out, E]) Result[Out, E] {
	if r.IsFailure() {
		return Fail[Out](r.Err())
	}
	if fn.IsFailure() {
		return Fail[Out](fn.Err())
	}
	return Success[Out, E](fn.Value()(r.Value()))
}

// MapError converts the error value of a failure, leaving successes
// untouched.
func MapError[T, In, Out any](r Result[T, In], mapping func(In) Out) Result[T, Out] {
	if r.IsFailure() {
		return Fail[T](mapping(r.Err()))
	}
	return Success[T, Out](r.Value())
}

// Convert rebuilds a result with both payload types converted. The
// discriminant is preserved and only the live alternative's converter is
// invoked.
func Convert[In, Out, EIn, EOut any](r Result[In, EIn],
	value func(In) Out, err func(EIn) EOut) Result[Out, EOut] {

	if r.IsSuccess() {
		return Success[Out, EOut](value(r.Value()))
	}
	return Fail[Out](err(r.Err()))
}

// Tee invokes the given callback with the result value and returns the
// result unchanged. Failures pass through without invoking the callback.
func Tee[T, E any](r Result[T, E], onSuccess func(T)) Result[T, E] {
	if r.IsSuccess() {
		onSuccess(r.Value())
	}
	return r
}

// TeeError invokes the given callback with the error value and returns the
// result unchanged. Successes pass through without invoking the callback.
func TeeError[T, E any](r Result[T, E], onFailure func(E)) Result[T, E] {
	if r.IsFailure() {
		onFailure(r.Err())
	}
	return r
}

// Finally collapses the result to a final value via the handler matching
// its state.
func Finally[T, E, Out any](r Result[T, E],
	onSuccess func(T) Out, onFailure func(E) Out) Out {

	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}

// Pack converts an ordinary (value, error) pair to a result. A nil error
// yields a success.
func Pack[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](value)
}

// Unpack converts a result back to an ordinary (value, error) pair.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.Err()
	}
	return r.Value(), nil
}

// Equal compares two results. Results are equal when they hold the same
// alternative and the live payloads compare equal.
func Equal[T, E comparable](lhs, rhs Result[T, E]) bool {
	if lhs.Status() != rhs.Status() {
		return false
	}
	if lhs.IsSuccess() {
		return lhs.Value() == rhs.Value()
	}
	return lhs.Err() == rhs.Err()
}

// EqualValue compares the result value with the given value. Failures
// never compare equal to a value.
func EqualValue[T comparable, E any](r Result[T, E], value T) bool {
	return r.IsSuccess() && r.Value() == value
}

// EqualFunc compares two results using the given payload comparators.
func EqualFunc[T, E any](lhs, rhs Result[T, E],
	equalValues func(T, T) bool, equalErrors func(E, E) bool) bool {

	if lhs.Status() != rhs.Status() {
		return false
	}
	if lhs.IsSuccess() {
		return equalValues(lhs.Value(), rhs.Value())
	}
	return equalErrors(lhs.Err(), rhs.Err())
}
