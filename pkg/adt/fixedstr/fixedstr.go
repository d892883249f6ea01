package fixedstr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCapacity is returned when an append would exceed the string capacity.
var ErrCapacity = errors.New("fixedstr: capacity exceeded")

// RangeError is the panic value raised on out-of-range element access.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fixedstr: index %d out of range [0, %d)", e.Index, e.Len)
}

// String is an immutable string with a fixed capacity. Mutating operations
// return a new String with the same capacity; growth past the capacity is
// an error.
//
// The zero value is an empty string with zero capacity.
type String struct {
	data string
	cap  int
}

// New returns an empty string with the given capacity.
func New(capacity int) String {
	return String{cap: capacity}
}

// Make returns a string holding s with capacity len(s).
func Make(s string) String {
	return String{data: s, cap: len(s)}
}

// MakeCap returns a string holding s with the given capacity.
func MakeCap(s string, capacity int) (String, error) {
	if len(s) > capacity {
		return String{}, ErrCapacity
	}
	return String{data: s, cap: capacity}, nil
}

// Len returns the number of stored bytes.
func (s String) Len() int {
	return len(s.data)
}

// Cap returns the capacity.
func (s String) Cap() int {
	return s.cap
}

// Empty returns true if the string holds no bytes.
func (s String) Empty() bool {
	return len(s.data) == 0
}

// At returns the byte at position i. It panics with *RangeError when i is
// out of range.
func (s String) At(i int) byte {
	if i < 0 || i >= len(s.data) {
		panic(&RangeError{Index: i, Len: len(s.data)})
	}
	return s.data[i]
}

// SetAt returns a new string with the byte at position i replaced. It
// panics with *RangeError when i is out of range.
func (s String) SetAt(i int, c byte) String {
	if i < 0 || i >= len(s.data) {
		panic(&RangeError{Index: i, Len: len(s.data)})
	}
	b := []byte(s.data)
	b[i] = c
	return String{data: string(b), cap: s.cap}
}

// Front returns the first byte. It panics with *RangeError when the string
// is empty.
func (s String) Front() byte {
	return s.At(0)
}

// Back returns the last byte. It panics with *RangeError when the string
// is empty.
func (s String) Back() byte {
	return s.At(len(s.data) - 1)
}

// Data returns a copy of the stored bytes.
func (s String) Data() []byte {
	return []byte(s.data)
}

// Append returns a new string with the given bytes appended, or
// ErrCapacity when the result would not fit.
func (s String) Append(bytes ...byte) (String, error) {
	return s.AppendString(string(bytes))
}

// AppendString returns a new string with t appended, or ErrCapacity when
// the result would not fit.
func (s String) AppendString(t string) (String, error) {
	if len(s.data)+len(t) > s.cap {
		return String{}, ErrCapacity
	}
	return String{data: s.data + t, cap: s.cap}, nil
}

// Map returns a new string constructed by applying the mapping to each
// byte of the current string.
func (s String) Map(mapping func(byte) byte) String {
	b := []byte(s.data)
	for i, c := range b {
		b[i] = mapping(c)
	}
	return String{data: string(b), cap: s.cap}
}

// StartsWith reports whether the string begins with the given prefix.
func (s String) StartsWith(prefix string) bool {
	return strings.HasPrefix(s.data, prefix)
}

// EndsWith reports whether the string ends with the given suffix.
func (s String) EndsWith(suffix string) bool {
	return strings.HasSuffix(s.data, suffix)
}

// Equal compares the stored content of two strings. Capacity does not
// participate in the comparison.
func (s String) Equal(t String) bool {
	return s.data == t.data
}

// String returns the stored content.
func (s String) String() string {
	return s.data
}
