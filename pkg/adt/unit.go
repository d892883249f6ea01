package adt

// Unit is the payload of results that succeed without data. It occupies no
// storage.
type Unit struct{}

// Done returns a success carrying no data.
func Done[E any]() Result[Unit, E] {
	return Success[Unit, E](Unit{})
}

// MapUnit applies the given producer to a data-less success. Failures pass
// through carrying the original error value.
func MapUnit[Out, E any](r Result[Unit, E], produce func() Out) Result[Out, E] {
	if r.IsSuccess() {
		return Success[Out, E](produce())
	}
	return Fail[Out](r.Err())
}

// BindUnit chains a data-less success into the given producer. Failures
// short-circuit without invoking the producer.
func BindUnit[Out, E any](r Result[Unit, E], produce func() Result[Out, E]) Result[Out, E] {
	if r.IsSuccess() {
		return produce()
	}
	return Fail[Out](r.Err())
}
