package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/decint/integer"
)

// ErrTestFailed is returned by check when a scenario does not hold.
var ErrTestFailed = errors.New("Test failed")

var Check = &cobra.Command{
	Use:   "check",
	Short: "Run the reference scenarios of the integer type.",
	Long: "Run the reference scenarios of the integer type, printing one line per\n" +
		"scenario. Stops at the first scenario that does not hold.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd.OutOrStdout(), scenarios())
	},
}

// scenario prints its own report line and returns whether it held.
type scenario func(w io.Writer) (bool, error)

func runScenarios(w io.Writer, ss []scenario) error {
	for i, s := range ss {
		ok, err := s(w)
		if err != nil {
			return err
		}

		if !ok {
			slog.Error("scenario failed", "index", i)

			return ErrTestFailed
		}
	}

	slog.Info("all scenarios passed", "count", len(ss))

	return nil
}

func equal(want string, got integer.Int) scenario {
	return func(w io.Writer) (bool, error) {
		lhs, err := integer.Parse(want)
		if err != nil {
			return false, err
		}

		ok := lhs.Equal(got)
		_, err = fmt.Fprintf(w, "Test: %s == %s, %t\n", lhs, got, ok)

		return ok, err
	}
}

func less(x, y integer.Int) scenario {
	return func(w io.Writer) (bool, error) {
		ok := x.Less(y)
		_, err := fmt.Fprintf(w, "Test: %s < %s, %t\n", x, y, ok)

		return ok, err
	}
}

func fails(class *errs.Class, fn func() error) scenario {
	return func(w io.Writer) (bool, error) {
		ok := class.Has(fn())
		_, err := fmt.Fprintf(w, "Test for exception, %t\n", ok)

		return ok, err
	}
}

func scenarios() []scenario {
	i := integer.FromInt64
	quo := func(x, y int64) integer.Int { return i(x).MustQuo(i(y)) }
	rem := func(x, y int64) integer.Int { return i(x).MustRem(i(y)) }

	return []scenario{
		// Construction.
		equal("0", integer.Int{}),
		equal("5", integer.FromSigned(int8(5))),
		equal("45", integer.FromUnsigned(uint8(45))),
		equal("1235", integer.FromUnsigned(uint16(1235))),
		equal("12895662", integer.FromUnsigned(uint32(12895662))),
		equal("5248915", integer.FromUnsigned(uint(5248915))),
		equal("519205753152", integer.FromUnsigned(uint64(519205753152))),
		equal("-45", integer.FromSigned(int8(-45))),
		equal("-1235", integer.FromSigned(int16(-1235))),
		equal("-12895662", integer.FromSigned(int32(-12895662))),
		equal("-5248915342342", integer.FromSigned(int64(-5248915342342))),
		equal("-519205753152", integer.FromSigned(int64(-519205753152))),

		// Unary plus and minus.
		equal("3905142830651", i(3905142830651).Pos()),
		equal("-18509176298765", i(-18509176298765).Pos()),
		equal("-651892736454", i(651892736454).Neg()),
		equal("7165981724659812", i(-7165981724659812).Neg()),

		// Addition.
		equal("10384065733686", i(5819083357103).Add(i(4564982376583))),
		equal("57576635029", i(999235781624).Add(i(-941659146595))),
		equal("-353760973370", i(-618274569182).Add(i(264513595812))),
		equal("-175279796602675", i(-76823658126132).Add(i(-98456138476543))),
		equal("0", i(-56137569187354).Add(i(56137569187354))),
		equal("69874561941049", i(12314).Add(i(69874561928735))),
		equal("12837544873758", i(12837501927635).Add(i(42946123))),

		// Subtraction.
		equal("1254100980520", i(5819083357103).Sub(i(4564982376583))),
		equal("1940894928219", i(999235781624).Sub(i(-941659146595))),
		equal("-882788164994", i(-618274569182).Sub(i(264513595812))),
		equal("21632480350411", i(-76823658126132).Sub(i(-98456138476543))),
		equal("1", i(100000000000000).Sub(i(99999999999999))),
		equal("-69874561916421", i(12314).Sub(i(69874561928735))),
		equal("12837458981512", i(12837501927635).Sub(i(42946123))),

		// Multiplication.
		equal("26564012973042635013919049", i(5819083357103).Mul(i(4564982376583))),
		equal("-940939513371243623170280", i(999235781624).Mul(i(-941659146595))),
		equal("-163542029493445979465784", i(-618274569182).Mul(i(264513595812))),
		equal("7563760722741050112617321676", i(-76823658126132).Mul(i(-98456138476543))),
		equal("0", i(100000000000000).Mul(i(0))),
		equal("860435355590442790", i(12314).Mul(i(69874561928735))),
		equal("551320936796949809105", i(12837501927635).Mul(i(42946123))),

		// Division.
		equal("89", quo(5819083357103, 64982376583)),
		equal("-602", quo(999235781624, -1659146595)),
		equal("-2", quo(-618274569182, 264513595812)),
		equal("0", quo(-76823658126132, -98456138476543)),
		equal("0", quo(12314, 69874561928735)),
		equal("298921", quo(12837501927635, 42946123)),
		equal("10000000", quo(10000000, 1)),
		fails(&integer.DivisionByZero, func() error {
			_, err := i(1).Quo(i(0))
			return err
		}),

		// Remainder.
		equal("35651841216", rem(5819083357103, 64982376583)),
		equal("429531434", rem(999235781624, -1659146595)),
		equal("-89247377558", rem(-618274569182, 264513595812)),
		equal("-192394066908", rem(-76823658126132, -456138476543)),
		equal("12314", rem(12314, 69874561928735)),
		equal("3894352", rem(12837501927635, 42946123)),
		fails(&integer.DivisionByZero, func() error {
			_, err := i(1).Rem(i(0))
			return err
		}),

		// Digit shifts.
		equal("462000", i(462).ShiftLeft(3)),
		equal("-156400000", i(-1564).ShiftLeft(5)),
		equal("0", i(0).ShiftLeft(10)),
		equal("42", i(42).ShiftLeft(0)),
		equal("457", i(45700).ShiftRight(2)),
		equal("-189", i(-1891265481).ShiftRight(7)),
		equal("0", i(3156436).ShiftRight(10)),
		equal("0", i(0).ShiftRight(0)),

		// Ordering.
		less(i(13758135), i(135763987561)),
		less(i(-31835987), i(3746189365535)),
		less(i(-13547189365981), i(-43852945)),
	}
}
