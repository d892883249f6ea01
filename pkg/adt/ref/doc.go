// Package ref provides a checked non-owning reference.
//
// A Ref aliases externally-owned data without participating in its
// lifetime. It is rebindable (Set, Clear) and nullable; Get panics with
// *NilRefError on null access, Unwrap converts to an option for callers
// that prefer branching over panicking.
package ref
