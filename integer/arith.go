package integer

import (
	"github.com/calebcase/decint/magnitude"
)

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.mag == nil:
		return 0
	case x.neg:
		return -1
	}

	return 1
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return x.mag == nil
}

// Digits returns the number of decimal digits in x. Zero has one digit.
func (x Int) Digits() int {
	return magnitude.Len(x.mag)
}

// Int64 returns x as an int64. It reports false if x does not fit.
func (x Int) Int64() (v int64, ok bool) {
	u, ok := magnitude.Uint64(x.mag)
	if !ok {
		return 0, false
	}

	if x.neg {
		if u > 1<<63 {
			return 0, false
		}

		return int64(-u), true
	}

	if u > 1<<63-1 {
		return 0, false
	}

	return int64(u), true
}

// Uint64 returns x as a uint64. It reports false if x is negative or does not
// fit.
func (x Int) Uint64() (v uint64, ok bool) {
	if x.neg {
		return 0, false
	}

	return magnitude.Uint64(x.mag)
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}

		return 1
	}

	c := magnitude.Cmp(x.mag, y.mag)
	if x.neg {
		return -c
	}

	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && magnitude.Cmp(x.mag, y.mag) == 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Pos returns a copy of x (unary plus).
func (x Int) Pos() Int {
	return newInt(x.neg, magnitude.Clone(x.mag))
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	return newInt(!x.neg, magnitude.Clone(x.mag))
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return newInt(false, magnitude.Clone(x.mag))
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return newInt(x.neg, magnitude.Add(x.mag, y.mag))
	}

	// Opposite signs: the larger magnitude decides the sign.
	switch magnitude.Cmp(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return newInt(x.neg, magnitude.Sub(x.mag, y.mag))
	}

	return newInt(y.neg, magnitude.Sub(y.mag, x.mag))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, magnitude.Mul(x.mag, y.mag))
}

// QuoRem returns the quotient x/y and remainder x%y truncated toward zero. It
// returns a DivisionByZero error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, DivisionByZero.New("%s / 0", x)
	}

	qm, rm := magnitude.DivMod(x.mag, y.mag)

	return newInt(x.neg != y.neg, qm), newInt(x.neg, rm), nil
}

// Quo returns x / y truncated toward zero. It returns a DivisionByZero error if
// y is zero.
func (x Int) Quo(y Int) (q Int, err error) {
	q, _, err = x.QuoRem(y)

	return q, err
}

// Rem returns x % y. A nonzero remainder has the sign of x. It returns a
// DivisionByZero error if y is zero.
func (x Int) Rem(y Int) (r Int, err error) {
	_, r, err = x.QuoRem(y)

	return r, err
}

// ShiftLeft returns x * 10^n. It panics if the result would have more than
// math.MaxInt digits.
func (x Int) ShiftLeft(n uint) Int {
	return newInt(x.neg, magnitude.Shl(x.mag, n))
}

// ShiftRight returns x / 10^n truncated toward zero.
func (x Int) ShiftRight(n uint) Int {
	return newInt(x.neg, magnitude.Shr(x.mag, n))
}
