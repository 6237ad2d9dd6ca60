package magnitude

// Digits is a decimal magnitude, most significant digit first.
type Digits []byte

// Zero returns the normalized zero magnitude.
func Zero() Digits {
	return Digits{0}
}

// FromUint64 returns the digits of v.
func FromUint64(v uint64) Digits {
	if v == 0 {
		return Zero()
	}

	var buf [20]byte
	i := len(buf)

	for v > 0 {
		i--
		buf[i] = byte(v % 10)
		v /= 10
	}

	d := make(Digits, len(buf)-i)
	copy(d, buf[i:])

	return d
}

// FromText converts ASCII digits into a normalized magnitude. It reports false
// if text is empty or contains anything other than '0' through '9'.
func FromText(text []byte) (d Digits, ok bool) {
	if len(text) == 0 {
		return nil, false
	}

	// Skip leading zeros but keep at least one digit.
	start := 0
	for start < len(text)-1 && text[start] == '0' {
		start++
	}

	for _, c := range text {
		if c < '0' || c > '9' {
			return nil, false
		}
	}

	d = make(Digits, len(text)-start)
	for i, c := range text[start:] {
		d[i] = c - '0'
	}

	return d, true
}

// Normalize returns a copy of d without leading zeros. All zero (or empty)
// input collapses to Digits{0}.
func Normalize(d Digits) Digits {
	t := trim(d)
	if len(t) == 0 {
		return Zero()
	}

	return Clone(t)
}

// trim returns the subslice of d without leading zeros. The result may be
// empty and shares storage with d.
func trim(d Digits) Digits {
	i := 0
	for i < len(d) && d[i] == 0 {
		i++
	}

	return d[i:]
}

// Clone returns an independent copy of d.
func Clone(d Digits) Digits {
	if len(d) == 0 {
		return Zero()
	}

	c := make(Digits, len(d))
	copy(c, d)

	return c
}

// IsZero reports whether d represents zero.
func IsZero(d Digits) bool {
	return len(trim(d)) == 0
}

// Len returns the number of significant digits in d. Zero has one digit.
func Len(d Digits) int {
	n := len(trim(d))
	if n == 0 {
		return 1
	}

	return n
}

// Append appends the ASCII form of d to dst.
func Append(dst []byte, d Digits) []byte {
	t := trim(d)
	if len(t) == 0 {
		return append(dst, '0')
	}

	for _, v := range t {
		dst = append(dst, '0'+v)
	}

	return dst
}

// String returns the ASCII form of d.
func String(d Digits) string {
	return string(Append(make([]byte, 0, len(d)), d))
}

// Uint64 returns d as a uint64. It reports false if d does not fit.
func Uint64(d Digits) (v uint64, ok bool) {
	const cutoff = (1<<64 - 1) / 10

	for _, digit := range trim(d) {
		if v > cutoff {
			return 0, false
		}

		v *= 10

		if v+uint64(digit) < v {
			return 0, false
		}

		v += uint64(digit)
	}

	return v, true
}
