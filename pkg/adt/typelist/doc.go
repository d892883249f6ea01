// Package typelist provides immutable list algebra: map, filter, fold,
// sort, slice, split and positional edits over a generic element type.
//
// Every operation returns a new list; receivers are never modified. The
// Types/TypeOf helpers instantiate the algebra over reflect.Type for code
// that manipulates sets of types at runtime.
package typelist
