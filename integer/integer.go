package integer

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/decint/magnitude"
)

// Int is a signed decimal integer of unbounded size.
type Int struct {
	// mag is nil for zero, otherwise normalized.
	mag magnitude.Digits
	neg bool
}

// Zero is the zero Int.
var Zero = Int{}

// newInt returns the canonical Int for the given sign and magnitude. It takes
// ownership of mag.
func newInt(neg bool, mag magnitude.Digits) Int {
	if magnitude.IsZero(mag) {
		return Int{}
	}

	return Int{
		mag: mag,
		neg: neg,
	}
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v >= 0 {
		return FromUint64(uint64(v))
	}

	// Negate through the unsigned form so math.MinInt64 does not overflow.
	u := uint64(-(v + 1)) + 1

	return newInt(true, magnitude.FromUint64(u))
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	return newInt(false, magnitude.FromUint64(v))
}

// FromSigned returns v as an Int for any signed integer type.
func FromSigned[T constraints.Signed](v T) Int {
	return FromInt64(int64(v))
}

// FromUnsigned returns v as an Int for any unsigned integer type.
func FromUnsigned[T constraints.Unsigned](v T) Int {
	return FromUint64(uint64(v))
}

// Parse converts a decimal string into an Int. See the package documentation
// for the accepted grammar.
func Parse(s string) (Int, error) {
	text := []byte(s)

	neg := false
	if len(text) > 0 && text[0] == '-' {
		neg = true
		text = text[1:]
	}

	mag, ok := magnitude.FromText(text)
	if !ok {
		return Int{}, InvalidFormat.New("%q", s)
	}

	return newInt(neg, mag), nil
}

// MustParse is like Parse but panics if the string is not a valid integer.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}

// Append appends the canonical text form of x to dst.
func (x Int) Append(dst []byte) []byte {
	if x.neg {
		dst = append(dst, '-')
	}

	return magnitude.Append(dst, x.mag)
}

// String implements fmt.Stringer.
func (x Int) String() string {
	return string(x.Append(make([]byte, 0, len(x.mag)+1)))
}

// Format implements fmt.Formatter. It supports the verbs %v, %s and %d with
// the '+' flag and width, and %q.
func (x Int) Format(state fmt.State, verb rune) {
	var buf []byte

	switch verb {
	case 'v', 's', 'd':
		if state.Flag('+') && !x.neg {
			buf = append(buf, '+')
		}

		buf = x.Append(buf)
	case 'q':
		buf = strconv.AppendQuote(buf, x.String())
	default:
		fmt.Fprintf(state, "%%!%c(integer.Int=%s)", verb, x.String())

		return
	}

	if w, ok := state.Width(); ok && w > len(buf) {
		zeros := state.Flag('0') && !state.Flag('-') && verb != 'q'

		pad := make([]byte, w-len(buf))
		for i := range pad {
			pad[i] = ' '
			if zeros {
				pad[i] = '0'
			}
		}

		switch {
		case state.Flag('-'):
			buf = append(buf, pad...)
		case zeros && (buf[0] == '-' || buf[0] == '+'):
			// Zero padding goes between the sign and the digits.
			buf = append(append([]byte{buf[0]}, pad...), buf[1:]...)
		default:
			buf = append(pad, buf...)
		}
	}

	_, _ = state.Write(buf)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (data []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	*x, err = Parse(string(text))

	return err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	var sign uint64
	if x.neg {
		sign = 1
	}

	z := magnitude.MulAddSmall(x.mag, 2, sign)

	// Peel off base 256 digits least significant first.
	for {
		var r uint64

		z, r = magnitude.DivModSmall(z, 256)
		data = append(data, byte(r))

		if magnitude.IsZero(z) {
			break
		}
	}

	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return InvalidFormat.New("empty binary integer")
	}

	z := magnitude.Zero()
	for _, b := range data {
		z = magnitude.MulAddSmall(z, 256, uint64(b))
	}

	mag, sign := magnitude.DivModSmall(z, 2)

	*x = newInt(sign == 1, mag)

	return nil
}
