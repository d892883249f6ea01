package wrap

import "golang.org/x/exp/constraints"

// Value wraps a scalar of type T under a phantom Tag type, producing a
// distinct, non-interchangeable type per tag. Two wrappers over the same
// representation with different tags cannot be assigned or compared to each
// other, e.g. a row index and a column index both backed by uint.
//
// The tag type is never instantiated; any empty struct works:
//
//	type rowTag struct{}
//	type Row = wrap.Value[uint, rowTag]
type Value[T any, Tag any] struct {
	value T
}

// New returns a wrapper holding the given value.
func New[T any, Tag any](value T) Value[T, Tag] {
	return Value[T, Tag]{value: value}
}

// Get returns the stored value.
func (w Value[T, Tag]) Get() T {
	return w.value
}

// Set replaces the stored value.
func (w *Value[T, Tag]) Set(value T) {
	w.value = value
}

// Swap exchanges the stored values of two wrappers.
func (w *Value[T, Tag]) Swap(other *Value[T, Tag]) {
	w.value, other.value = other.value, w.value
}

// Equal compares two wrappers by their stored values.
func Equal[T comparable, Tag any](lhs, rhs Value[T, Tag]) bool {
	return lhs.value == rhs.value
}

// Compare orders two wrappers by their stored values, returning -1, 0 or 1.
func Compare[T constraints.Ordered, Tag any](lhs, rhs Value[T, Tag]) int {
	switch {
	case lhs.value < rhs.value:
		return -1
	case lhs.value > rhs.value:
		return 1
	default:
		return 0
	}
}

// Less reports whether lhs orders before rhs.
func Less[T constraints.Ordered, Tag any](lhs, rhs Value[T, Tag]) bool {
	return lhs.value < rhs.value
}
