package option

import "github.com/ok-11/adt3/pkg/adt"

// Map applies the given mapping to the option value.
//
// If the option holds a value, it returns a new option holding the mapped
// value, otherwise an empty option.
func Map[In, Out any](o Option[In], mapping func(In) Out) Option[Out] {
	if o.HasValue() {
		return Some(mapping(o.Value()))
	}
	return None[Out]()
}

// Bind applies the given binder to the option value.
//
// If the option holds a value, it returns the binder's result directly,
// otherwise an empty option. The binder is never invoked on empty options.
func Bind[In, Out any](o Option[In], binder func(In) Option[Out]) Option[Out] {
	if o.HasValue() {
		return binder(o.Value())
	}
	return None[Out]()
}

// Filter returns the option itself when it holds a value satisfying the
// predicate, otherwise an empty option.
func Filter[T any](o Option[T], predicate func(T) bool) Option[T] {
	if o.HasValue() && predicate(o.Value()) {
		return o
	}
	return None[T]()
}

// Tee invokes the given callback with the option value and returns the
// option unchanged. Empty options pass through without invoking it.
func Tee[T any](o Option[T], onValue func(T)) Option[T] {
	if o.HasValue() {
		onValue(o.Value())
	}
	return o
}

// Equal compares two options. Options are equal when both are empty or both
// hold values comparing equal.
func Equal[T comparable](lhs, rhs Option[T]) bool {
	if lhs.HasValue() != rhs.HasValue() {
		return false
	}
	if !lhs.HasValue() {
		return true
	}
	return lhs.Value() == rhs.Value()
}

// EqualValue compares the option value with the given value. Empty options
// never compare equal to a value.
func EqualValue[T comparable](o Option[T], value T) bool {
	return o.HasValue() && o.Value() == value
}

// EqualFunc compares two options using the given value comparator.
func EqualFunc[T any](lhs, rhs Option[T], equal func(T, T) bool) bool {
	if lhs.HasValue() != rhs.HasValue() {
		return false
	}
	if !lhs.HasValue() {
		return true
	}
	return equal(lhs.Value(), rhs.Value())
}

// ToResult converts the option to a result, using the given error value for
// the empty case.
func ToResult[T, E any](o Option[T], err E) adt.Result[T, E] {
	if o.HasValue() {
		return adt.Success[T, E](o.Value())
	}
	return adt.Fail[T](err)
}

// FromResult converts a result to an option, discarding the error value of
// failures.
func FromResult[T, E any](r adt.Result[T, E]) Option[T] {
	if r.IsSuccess() {
		return Some(r.Value())
	}
	return None[T]()
}
