package adt

// Failure is a named holder for an error value. It disambiguates "construct
// the failure side" from "construct the success side" when both payload
// types would accept the same argument, and carries error values between
// results of different value types.
type Failure[E any] struct {
	err E
}

// NewFailure returns a holder for the given error value.
func NewFailure[E any](err E) Failure[E] {
	return Failure[E]{err: err}
}

// Err returns the held error value.
func (f Failure[E]) Err() E {
	return f.err
}

// failureTag marks Failure specializations for IsFailureType.
func (f Failure[E]) failureTag() {}

// MapFailure converts the held error value to a new type.
func MapFailure[In, Out any](f Failure[In], convert func(In) Out) Failure[Out] {
	return NewFailure(convert(f.Err()))
}

// EqualFailures compares two failure holders by their error values.
func EqualFailures[E comparable](lhs, rhs Failure[E]) bool {
	return lhs.err == rhs.err
}
