// Package wrap provides a tagged scalar wrapper used to create distinct,
// non-interchangeable types from a shared representation.
//
// The phantom Tag type parameter makes each instantiation a separate type,
// so values with different tags cannot be mixed even though they share the
// same underlying scalar.
//
// Operator support is opt-in by constraint instead of by type: the
// arithmetic family (Add, Sub, Mul, Div, Mod) requires a numeric
// representation, the bitwise family (And, Or, Xor, AndNot, Not, Shl, Shr)
// an integer one, and the increment family (Inc, Dec, PostInc, PostDec)
// works on pointers to numeric wrappers. Wrappers over non-numeric
// representations simply have no access to these families.
package wrap
