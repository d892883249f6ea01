package ref

import "github.com/ok-11/adt3/pkg/adt/option"

// NilRefError is the panic value raised when Get is called on a null
// reference.
type NilRefError struct{}

func (e *NilRefError) Error() string {
	return "ref: nil reference access"
}

// Ref is a nullable non-owning reference. It aliases externally-owned data
// and never participates in the referent's lifetime; the referent's
// validity is the caller's responsibility. The zero value is null.
type Ref[T any] struct {
	ptr *T
}

// Of returns a reference aliasing the given pointer. A nil pointer yields
// a null reference.
func Of[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// IsNil reports whether the reference is null.
func (r Ref[T]) IsNil() bool {
	return r.ptr == nil
}

// Get returns the aliased pointer.
//
// It panics with *NilRefError when the reference is null. Check IsNil or
// use Unwrap when the state is not already known.
func (r Ref[T]) Get() *T {
	if r.ptr == nil {
		panic(&NilRefError{})
	}
	return r.ptr
}

// Deref returns a copy of the referent. It panics with *NilRefError when
// the reference is null.
func (r Ref[T]) Deref() T {
	return *r.Get()
}

// Set rebinds the reference to the given pointer.
func (r *Ref[T]) Set(p *T) {
	r.ptr = p
}

// Clear rebinds the reference to null.
func (r *Ref[T]) Clear() {
	r.ptr = nil
}

// Unwrap converts the reference to an option over the aliased pointer.
func (r Ref[T]) Unwrap() option.Option[*T] {
	if r.ptr == nil {
		return option.None[*T]()
	}
	return option.Some(r.ptr)
}

// Equal reports whether two references alias the same referent. Two null
// references are equal.
func Equal[T any](lhs, rhs Ref[T]) bool {
	return lhs.ptr == rhs.ptr
}
