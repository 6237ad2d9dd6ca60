package magnitude

import "math"

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b Digits) int {
	a, b = trim(a), trim(b)

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for i := range a {
		if a[i] == b[i] {
			continue
		}

		if a[i] < b[i] {
			return -1
		}

		return 1
	}

	return 0
}

// Add returns a + b.
func Add(a, b Digits) Digits {
	a, b = trim(a), trim(b)

	out := make(Digits, max(len(a), len(b))+1)

	i := len(a) - 1
	j := len(b) - 1
	var carry byte

	for k := len(out) - 1; k >= 0; k-- {
		sum := carry
		if i >= 0 {
			sum += a[i]
			i--
		}
		if j >= 0 {
			sum += b[j]
			j--
		}

		out[k] = sum % 10
		carry = sum / 10
	}

	return Normalize(out)
}

// Sub returns a - b. It panics if a < b.
func Sub(a, b Digits) Digits {
	a, b = trim(a), trim(b)

	if Cmp(a, b) < 0 {
		panic("magnitude: negative difference")
	}

	return Normalize(sub(a, b))
}

// sub computes a - b for trimmed a >= b. The result is trimmed but may be
// empty.
func sub(a, b Digits) Digits {
	out := make(Digits, len(a))

	j := len(b) - 1
	var borrow byte

	for i := len(a) - 1; i >= 0; i-- {
		take := borrow
		if j >= 0 {
			take += b[j]
			j--
		}

		if a[i] < take {
			out[i] = a[i] + 10 - take
			borrow = 1
		} else {
			out[i] = a[i] - take
			borrow = 0
		}
	}

	return trim(out)
}

// Mul returns a * b.
func Mul(a, b Digits) Digits {
	a, b = trim(a), trim(b)

	if len(a) == 0 || len(b) == 0 {
		return Zero()
	}

	// Column sums are accumulated without carrying and resolved in a
	// single pass afterwards.
	cols := make([]uint64, len(a)+len(b))

	for i := len(a) - 1; i >= 0; i-- {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}

		for j := len(b) - 1; j >= 0; j-- {
			cols[i+j+1] += ai * uint64(b[j])
		}
	}

	out := make(Digits, len(cols))
	var carry uint64

	for k := len(cols) - 1; k >= 0; k-- {
		v := cols[k] + carry
		out[k] = byte(v % 10)
		carry = v / 10
	}

	return Normalize(out)
}

// DivMod returns the quotient and remainder of a / b such that
// a = q*b + r and 0 <= r < b. It panics if b is zero.
func DivMod(a, b Digits) (q, r Digits) {
	a, b = trim(a), trim(b)

	if len(b) == 0 {
		panic("magnitude: division by zero")
	}

	if Cmp(a, b) < 0 {
		return Zero(), Normalize(a)
	}

	q = make(Digits, len(a))
	rem := make(Digits, 0, len(b)+1)

	for i, digit := range a {
		rem = append(trim(rem), digit)

		var n byte
		for Cmp(rem, b) >= 0 {
			rem = sub(trim(rem), b)
			n++
		}

		q[i] = n
	}

	return Normalize(q), Normalize(rem)
}

// Shl returns d * 10^n. It panics if the result would have more than
// math.MaxInt digits.
func Shl(d Digits, n uint) Digits {
	t := trim(d)
	if len(t) == 0 {
		return Zero()
	}

	if n > uint(math.MaxInt-len(t)) {
		panic("magnitude: shift count too large")
	}

	out := make(Digits, len(t)+int(n))
	copy(out, t)

	return out
}

// Shr returns d / 10^n truncated.
func Shr(d Digits, n uint) Digits {
	t := trim(d)
	if n >= uint(len(t)) {
		return Zero()
	}

	return Clone(t[:len(t)-int(n)])
}

// MulAddSmall returns d*m + a. Both m and a must be below 2^59.
func MulAddSmall(d Digits, m, a uint64) Digits {
	t := trim(d)

	// 20 extra digits hold any uint64 carry.
	out := make(Digits, len(t)+20)
	carry := a

	k := len(out) - 1
	for i := len(t) - 1; i >= 0; i-- {
		v := uint64(t[i])*m + carry
		out[k] = byte(v % 10)
		carry = v / 10
		k--
	}

	for ; carry > 0; k-- {
		out[k] = byte(carry % 10)
		carry /= 10
	}

	return Normalize(out)
}

// DivModSmall returns d / m and d % m. The divisor must be below 2^59. It
// panics if m is zero.
func DivModSmall(d Digits, m uint64) (q Digits, r uint64) {
	if m == 0 {
		panic("magnitude: division by zero")
	}

	t := trim(d)
	q = make(Digits, len(t))

	for i, digit := range t {
		r = r*10 + uint64(digit)
		q[i] = byte(r / m)
		r %= m
	}

	return Normalize(q), r
}
