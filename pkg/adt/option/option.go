package option

import "fmt"

// BadAccessError is the panic value raised when Value is called on an
// empty option.
type BadAccessError struct {
	Op string // accessor that was called
}

func (e *BadAccessError) Error() string {
	return fmt.Sprintf("option: bad access: %s called on empty option", e.Op)
}

// Option represents an optional value: it either holds a value of type T or
// it is empty. The zero value is empty.
//
// Borrowed payloads are expressed as Option[*T]; copying an option copies
// the borrow, not the referent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an option holding the pointee, or an empty option when p
// is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromGet converts a comma-ok pair to an option.
func FromGet[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// HasValue returns true if the option holds a value.
func (o Option[T]) HasValue() bool {
	return o.present
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Value returns the stored value.
//
// It panics with *BadAccessError if the option is empty. Check HasValue or
// use Get when the state is not already known.
func (o Option[T]) Value() T {
	if !o.present {
		panic(&BadAccessError{Op: "Value"})
	}
	return o.value
}

// Get returns the stored value and true, or the zero value and false when
// the option is empty.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// ValueOr returns the stored value, or the given alternative when the
// option is empty.
func (o Option[T]) ValueOr(alternative T) T {
	if o.present {
		return o.value
	}
	return alternative
}

// ToPtr returns a pointer to a copy of the stored value, or nil when the
// option is empty.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// OrElse returns the option itself when it holds a value, otherwise the
// given alternative.
func (o Option[T]) OrElse(alternative Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alternative
}

// Mutate applies the given mutator to the stored value and returns the
// receiver. Empty options are left untouched.
func (o *Option[T]) Mutate(mutator func(*T)) *Option[T] {
	if o.present {
		mutator(&o.value)
	}
	return o
}

// Reset empties the option.
func (o *Option[T]) Reset() {
	*o = Option[T]{}
}

// optionTag marks Option specializations for IsOptionType.
func (o Option[T]) optionTag() {}

// optionMarker is implemented by every Option specialization.
type optionMarker interface {
	optionTag()
}

// IsOptionType reports whether the dynamic type of v is an Option
// specialization.
func IsOptionType(v any) bool {
	_, ok := v.(optionMarker)
	return ok
}

// As unwraps v if it is an option with exactly the given value type.
func As[T any](v any) (Option[T], bool) {
	o, ok := v.(Option[T])
	return o, ok
}
