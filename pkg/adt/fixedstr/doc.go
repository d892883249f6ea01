// Package fixedstr provides an immutable fixed-capacity string.
//
// Mutating operations (SetAt, Append, Map) return a new String sharing the
// capacity of the receiver; appends past the capacity fail with
// ErrCapacity and out-of-range element access panics with *RangeError.
package fixedstr
