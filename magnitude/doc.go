// Package magnitude provides unsigned arbitrary length decimal digit
// sequences.
//
// A magnitude is laid out most significant digit first, one digit (0 through
// 9) per byte:
//
//  1234 = Digits{1, 2, 3, 4}
//
// A magnitude is normalized if it has no leading zero digit, except for zero
// itself which is the single digit Digits{0}. Every function in this package
// returns a normalized, freshly allocated magnitude. The empty (or nil)
// sequence is accepted as an input and treated as zero.
//
// Arithmetic
//
// The algorithms are the schoolbook ones: addition and subtraction run from
// the least significant digit with carry or borrow, multiplication
// accumulates every digit pair into its column, and division is long division
// with trial subtraction. Addition, subtraction and shifts are linear in the
// operand lengths, multiplication and division are quadratic.
//
// Preconditions
//
// Sub requires a >= b and DivMod requires a nonzero divisor. Violations panic,
// callers are expected to check first.
package magnitude
