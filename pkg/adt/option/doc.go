// Package option provides the optional-value container Option[T], the
// error-less counterpart of adt.Result.
//
// An Option either holds a value of type T or it is empty; the zero value
// is empty.
//
// Key operations:
// - Some/None/FromPtr/FromGet: construct options
// - HasValue/Value/Get/ValueOr/ToPtr: inspect and extract; Value panics with
//   *BadAccessError on empty options
// - Map/Bind/Filter/Tee: transform and chain; empty options short-circuit
// - OrElse/Mutate/Reset: fallbacks and in-place updates
// - ToResult/FromResult: bridge to adt.Result
package option
