package integer

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestFromFixedWidth(t *testing.T) {
	type TC struct {
		name string
		x    Int
	}

	tcs := []TC{
		{name: "0", x: Int{}},
		{name: "0", x: Zero},
		{name: "0", x: FromInt64(0)},
		{name: "0", x: FromUint64(0)},
		{name: "0", x: FromSigned(int8(0))},
		{name: "0", x: FromUnsigned(uint16(0))},
		{name: "5", x: FromSigned(int8(5))},
		{name: "45", x: FromUnsigned(uint8(45))},
		{name: "1235", x: FromUnsigned(uint16(1235))},
		{name: "12895662", x: FromUnsigned(uint32(12895662))},
		{name: "5248915", x: FromUnsigned(uint(5248915))},
		{name: "519205753152", x: FromUnsigned(uint64(519205753152))},
		{name: "-45", x: FromSigned(int8(-45))},
		{name: "-1235", x: FromSigned(int16(-1235))},
		{name: "-12895662", x: FromSigned(int32(-12895662))},
		{name: "-5248915342342", x: FromSigned(int(-5248915342342))},
		{name: "-519205753152", x: FromSigned(int64(-519205753152))},
		{name: "-128", x: FromSigned(int8(math.MinInt8))},
		{name: "-32768", x: FromSigned(int16(math.MinInt16))},
		{name: "-2147483648", x: FromSigned(int32(math.MinInt32))},
		{name: "-9223372036854775808", x: FromInt64(math.MinInt64)},
		{name: "9223372036854775807", x: FromInt64(math.MaxInt64)},
		{name: "18446744073709551615", x: FromUint64(math.MaxUint64)},
		{name: "255", x: FromUnsigned(uint8(math.MaxUint8))},
		{name: "4294967295", x: FromUnsigned(uintptr(math.MaxUint32))},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.name, tc.x.String())
			require.Equal(t, MustParse(tc.name), tc.x)
		})
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		in   string
		want string
		err  bool
	}

	tcs := []TC{
		{in: "0", want: "0"},
		{in: "-0", want: "0"},
		{in: "000", want: "0"},
		{in: "-000", want: "0"},
		{in: "0045", want: "45"},
		{in: "-0045", want: "-45"},
		{in: "7165981724659812", want: "7165981724659812"},
		{in: "-26564012973042635013919049", want: "-26564012973042635013919049"},
		{in: "", err: true},
		{in: "-", err: true},
		{in: "+1", err: true},
		{in: "--1", err: true},
		{in: " 1", err: true},
		{in: "1 ", err: true},
		{in: "1_000", err: true},
		{in: "1,000", err: true},
		{in: "12a", err: true},
		{in: "1.0", err: true},
		{in: "0x10", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.in), func(t *testing.T) {
			x, err := Parse(tc.in)
			if tc.err {
				require.Error(t, err)
				require.True(t, InvalidFormat.Has(err), "%+v", err)
				require.Equal(t, Int{}, x)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, x.String())
		})
	}

	require.Panics(t, func() {
		MustParse("abc")
	})
}

func TestCanonicalZero(t *testing.T) {
	zeros := []Int{
		{},
		Zero,
		MustParse("0"),
		MustParse("-0"),
		MustParse("000"),
		FromInt64(0),
		FromUint64(0),
		FromSigned(int8(0)),
		FromUnsigned(uint8(0)),
		FromInt64(5).Sub(FromInt64(5)),
		FromInt64(-5).Mul(Zero),
		Zero.Neg(),
		FromInt64(-7).ShiftRight(1),
	}

	for i, z := range zeros {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, Int{}, z, spew.Sdump(z))
			require.Equal(t, "0", z.String())
			require.Equal(t, 0, z.Sign())
			require.True(t, z.IsZero())
			require.True(t, z.Equal(Zero))
		})
	}
}

func TestFormat(t *testing.T) {
	x := FromInt64(-42)
	y := FromInt64(42)

	require.Equal(t, "-42", fmt.Sprint(x))
	require.Equal(t, "-42", fmt.Sprintf("%v", x))
	require.Equal(t, "-42", fmt.Sprintf("%s", x))
	require.Equal(t, "-42", fmt.Sprintf("%d", x))
	require.Equal(t, `"-42"`, fmt.Sprintf("%q", x))
	require.Equal(t, "+42", fmt.Sprintf("%+d", y))
	require.Equal(t, "-42", fmt.Sprintf("%+d", x))
	require.Equal(t, "  -42", fmt.Sprintf("%5d", x))
	require.Equal(t, "-42  ", fmt.Sprintf("%-5d", x))
	require.Equal(t, "-0042", fmt.Sprintf("%05d", x))
	require.Equal(t, "00042", fmt.Sprintf("%05d", y))
	require.Equal(t, "%!x(integer.Int=42)", fmt.Sprintf("%x", y))
	require.Equal(t, "0", fmt.Sprint(Int{}))
}

func TestText(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "26564012973042635013919049", "-7563760722741050112617321676"} {
		x := MustParse(s)

		data, err := x.MarshalText()
		require.NoError(t, err)
		require.Equal(t, s, string(data))

		var y Int
		require.NoError(t, y.UnmarshalText(data))
		require.Equal(t, x, y)
	}

	var y Int
	err := y.UnmarshalText([]byte("+5"))
	require.Error(t, err)
	require.True(t, InvalidFormat.Has(err))
}

func TestConversions(t *testing.T) {
	v, ok := MustParse("-9223372036854775808").Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)

	v, ok = MustParse("9223372036854775807").Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), v)

	_, ok = MustParse("9223372036854775808").Int64()
	require.False(t, ok)

	_, ok = MustParse("-9223372036854775809").Int64()
	require.False(t, ok)

	u, ok := MustParse("18446744073709551615").Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), u)

	_, ok = MustParse("-1").Uint64()
	require.False(t, ok)

	require.Equal(t, 1, Zero.Digits())
	require.Equal(t, 10, FromInt64(-1891265481).Digits())
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "+1",
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name: "-1",
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name: "-127",
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "+127",
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name: "+128",
			data: []byte{
				0b0000_0001,
				0b0000_0000,
			},
		},
		{
			name: "+32767",
			data: []byte{
				0b1111_1111,
				0b1111_1110,
			},
		},
		{
			name: "-9223372036854775808",
			data: []byte{
				0b0000_0001,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0001,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// Parse does not accept '+', drop it from the name.
			name := tc.name
			if name[0] == '+' {
				name = name[1:]
			}
			x := MustParse(name)

			t.Run("marshal", func(t *testing.T) {
				data, err := x.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				y := Int{}
				err := y.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, x, y)
			})
		})
	}

	t.Run("negative zero", func(t *testing.T) {
		y := Int{}
		require.NoError(t, y.UnmarshalBinary([]byte{0b0000_0001}))
		require.Equal(t, Int{}, y)
	})

	t.Run("leading zero bytes", func(t *testing.T) {
		y := Int{}
		require.NoError(t, y.UnmarshalBinary([]byte{0, 0, 0b0000_0011}))
		require.Equal(t, FromInt64(-1), y)
	})

	t.Run("empty", func(t *testing.T) {
		y := Int{}
		err := y.UnmarshalBinary(nil)
		require.Error(t, err)
		require.True(t, InvalidFormat.Has(err))
	})

	t.Run("large", func(t *testing.T) {
		x := MustParse("-7563760722741050112617321676").ShiftLeft(100)

		data, err := x.MarshalBinary()
		require.NoError(t, err)

		y := Int{}
		require.NoError(t, y.UnmarshalBinary(data))
		require.Equal(t, x, y)
	})
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{"0", "-0", "0045", "-1891265481", "", "-", "+1", "1a"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		x, err := Parse(s)
		if err != nil {
			require.True(t, InvalidFormat.Has(err))

			return
		}

		y, err := Parse(x.String())
		require.NoError(t, err)
		require.Equal(t, x, y)

		data, err := x.MarshalBinary()
		require.NoError(t, err)

		z := Int{}
		require.NoError(t, z.UnmarshalBinary(data))
		require.Equal(t, x, z)
	})
}

func BenchmarkParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := Parse("-7563760722741050112617321676")
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkMarshalBinary(b *testing.B) {
	x := MustParse("-7563760722741050112617321676")

	for n := 0; n < b.N; n++ {
		_, err := x.MarshalBinary()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
