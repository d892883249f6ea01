// Package adt provides the core tagged success/failure container Result[T, E]
// together with its combinators and interface contracts.
//
// A Result holds exactly one of two alternatives: a value of type T or an
// error value of type E, tracked by a two-state Status discriminant. The zero
// value is a success holding T's zero value.
//
// Key operations:
// - Success/Fail/FailWith: construct a result from a value, an error value
//   or a Failure holder
// - Value/Err/Get/GetErr/ValueOr: extract payloads; Value and Err panic with
//   *BadAccessError when the other alternative is live
// - Map/Bind/Apply: transform and chain results; failures short-circuit
// - MapError/Convert: convert payload types between result specializations
// - Tee/TeeError/Mutate: side effects and in-place mutation
// - Finally/Pack/Unpack: collapse to plain values or bridge (T, error) pairs
//
// Borrowed payloads are expressed as Result[*T, E]; data-less successes use
// the Unit payload. The optional-value counterpart lives in the option
// subpackage, fluent chaining over Result[T, error] in the chain subpackage.
package adt
