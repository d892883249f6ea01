// Package chain provides a fluent wrapper around adt.Result[T, error] for
// building synchronous railway-style chains.
//
// A Chain carries a context.Context, a uuid identity and a creation
// timestamp alongside its result. Failures and context cancellation
// short-circuit every subsequent step.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/ThenTry: compose result-returning or (T, error)-returning functions
// - Map/Validate: transform or check the successful value
// - RepeatUntil/While/Or/And: looping and branch combinators
// - Ensure: trigger side effects without changing the result
// - Finally: collapse the chain to a final value via handlers
// - SwitchTo/MapTo/TryTo/FinallyTo: type-changing steps as package functions
//
// For plain combinators without context or identity, use package adt
// directly.
package chain
