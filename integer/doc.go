// Package integer provides an arbitrary-precision signed decimal integer.
//
// An Int is a sign and a decimal magnitude:
//
//  -1891265481 = (negative, 1891265481)
//
// Values are immutable. Every operation returns a new Int and leaves its
// operands untouched, so an Int may be shared between goroutines freely. The
// zero value of Int is zero.
//
// Canonical Form
//
// The magnitude never has a leading zero and zero is never negative. As a
// result there is exactly one representation of each number: "-0", "000" and
// FromInt64(0) all produce the zero value.
//
// Text
//
// Parse accepts an optional '-' followed by one or more ASCII digits:
//
//  integer ::= [ '-' ] digit { digit }
//  digit   ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//
// Leading zeros are accepted and dropped. A leading '+', white space, digit
// separators and empty input are rejected with an InvalidFormat error. String
// renders the canonical form, which Parse reads back unchanged.
//
// Division
//
// Quo and Rem truncate toward zero:
//
//  -618274569182 / 264513595812 = -2
//  -618274569182 % 264513595812 = -89247377558
//
// so that Quo(x, y)*y + Rem(x, y) == x and a nonzero remainder has the sign
// of the dividend. This is the convention of Go's own / and % operators, not
// floor or Euclidean division. A zero divisor returns a DivisionByZero error
// before any work is done.
//
// Digit Shifts
//
// ShiftLeft and ShiftRight move the decimal point: x.ShiftLeft(n) is x*10^n
// and x.ShiftRight(n) is x/10^n truncated toward zero.
//
// Encoding
//
// The binary form is the magnitude as big-endian bytes with a trailing sign
// bit (aka zigzag):
//
//  data = 2*|x| + (1 if x < 0)
//
// Zero is encoded as a single zero byte. Encoder and Decoder frame integers
// in a BSV stream with one data control block per integer.
package integer
